package conf

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/y7ut/empgrid/pkg/file"
)

type GridConf struct {
	App    `ini:"app"`
	Data   `ini:"data"`
	Grid   `ini:"grid"`
	Export `ini:"export"`
	Log    `ini:"log"`
}

// APP 属性
type App struct {
	Name   string `ini:"name" env:"EMPGRID_APP_NAME"`
	Locale string `ini:"locale" env:"EMPGRID_LOCALE"`
}

// 数据文件
type Data struct {
	Path string `ini:"path" env:"EMPGRID_DATA_PATH"`
}

// 表格分页
type Grid struct {
	PageSize        int   `ini:"page_size" env:"EMPGRID_PAGE_SIZE"`
	PageSizeOptions []int `ini:"page_size_options" delim:"," env:"EMPGRID_PAGE_SIZE_OPTIONS" envSeparator:","`
}

// 导出配置
type Export struct {
	Dir      string `ini:"dir" env:"EMPGRID_EXPORT_DIR"`
	FileName string `ini:"file_name" env:"EMPGRID_EXPORT_FILE"`
}

// 日志配置
type Log struct {
	Path  string `ini:"path" env:"EMPGRID_LOG_PATH"`
	Name  string `ini:"name" env:"EMPGRID_LOG_NAME"`
	Level string `ini:"level" env:"EMPGRID_LOG_LEVEL"`
}

var (
	APPConfig = Default()

	// EnvFiles 按顺序加载, 已经存在的环境变量不会被覆盖
	EnvFiles = []string{".env", ".env.local"}
)

// Default 没有配置文件时使用的配置
func Default() *GridConf {
	return &GridConf{
		App:    App{Name: "empgrid"},
		Data:   Data{Path: "./data/employees.json"},
		Grid:   Grid{PageSize: 10, PageSizeOptions: []int{10, 20}},
		Export: Export{Dir: ".", FileName: "employees.csv"},
		Log:    Log{Path: "./runtime/log", Name: "empgrid.log", Level: "info"},
	}
}

// Load 读取 ini 配置, 再用 .env 和 EMPGRID_* 环境变量覆盖
func Load(path string) (*GridConf, error) {
	cfg := Default()
	if path != "" {
		if err := ini.MapTo(cfg, path); err != nil {
			return nil, errors.Wrapf(err, "load ini file %s", path)
		}
	}

	if err := loadEnvFiles(EnvFiles); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	APPConfig = cfg
	return cfg, nil
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if ok, _ := file.PathExists(f); ok {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return errors.Wrap(godotenv.Load(existing...), "load env files")
}

// Validate 检查分页和导出配置
func (c *GridConf) Validate() error {
	if c.Grid.PageSize < 1 {
		return errors.Errorf("grid.page_size must be positive, got %d", c.Grid.PageSize)
	}
	for _, n := range c.Grid.PageSizeOptions {
		if n < 1 {
			return errors.Errorf("grid.page_size_options must be positive, got %d", n)
		}
	}
	if c.Data.Path == "" {
		return errors.New("data.path is required")
	}
	if c.Export.FileName == "" {
		return errors.New("export.file_name is required")
	}
	return nil
}

// Save 把配置写成 ini 文件
func (c *GridConf) Save(path string) error {
	cfg := ini.Empty()
	if err := ini.ReflectFrom(cfg, c); err != nil {
		return errors.Wrap(err, "reflect config")
	}

	cfg.Section("app").Comment = "Application name and number locale (empty uses LANG)"
	cfg.Section("data").Comment = "Employees JSON document"
	cfg.Section("grid").Comment = "Pagination"
	cfg.Section("export").Comment = "Export target"
	cfg.Section("log").Comment = "log config"
	return errors.Wrap(cfg.SaveTo(path), "save config")
}
