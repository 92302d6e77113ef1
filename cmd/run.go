package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/y7ut/empgrid/component/table"
	"github.com/y7ut/empgrid/conf"
	"github.com/y7ut/empgrid/employee"
	"github.com/y7ut/empgrid/pkg/file"
	"github.com/y7ut/empgrid/pkg/logger"
	"github.com/y7ut/empgrid/view"
)

// session 一次命令执行需要的配置, 日志和数据
type session struct {
	conf     *conf.GridConf
	log      *logrus.Logger
	closeLog func() error
	data     *employee.Dataset
}

// interactive 标准输入是否是终端
var interactive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// checkconfig 配置文件不存在时生成一份, 终端中会逐项询问
func checkconfig(path string, out io.Writer) error {
	exist, err := file.PathExists(path)
	if err != nil {
		return errors.Wrapf(err, "stat config %s", path)
	}
	if exist {
		return nil
	}

	fmt.Fprintln(out, "🧸 config not found")
	cfg := ParseConfig(interactive())
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "Configuration file saved to %s\n", path)
	return nil
}

// loadConfig 读取配置并设置金额的本地化格式
func loadConfig(out io.Writer) (*conf.GridConf, error) {
	if err := checkconfig(configPath, out); err != nil {
		return nil, err
	}
	cfg, err := conf.Load(configPath)
	if err != nil {
		return nil, err
	}

	tag := employee.HostLocale()
	if cfg.App.Locale != "" {
		if tag, err = employee.ParseLocale(cfg.App.Locale); err != nil {
			return nil, errors.Wrapf(err, "parse locale %q", cfg.App.Locale)
		}
	}
	employee.SetLocale(tag)
	return cfg, nil
}

// prepare headless 为 true 时日志同时输出到 stderr
func prepare(out io.Writer, headless bool) (*session, error) {
	cfg, err := loadConfig(out)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.New(logger.Options{
		Dir:    cfg.Log.Path,
		Name:   cfg.Log.Name,
		Level:  cfg.Log.Level,
		Stderr: headless,
	})
	if err != nil {
		return nil, err
	}

	data, err := employee.Load(cfg.Data.Path)
	if err != nil {
		log.WithError(err).Error("load employees")
		closeLog()
		return nil, err
	}
	log.WithFields(logrus.Fields{"file": cfg.Data.Path, "rows": data.Len()}).Debug("employees loaded")

	return &session{conf: cfg, log: log, closeLog: closeLog, data: data}, nil
}

func (s *session) Close() error {
	return s.closeLog()
}

// view 按配置创建表格, 再应用命令行的排序和搜索
func (s *session) view(search, sortSpec string) (*view.EmployeeTableView, error) {
	v, err := view.New(s.data, view.Options{
		PageSize:        s.conf.Grid.PageSize,
		PageSizeOptions: s.conf.Grid.PageSizeOptions,
		ExportDir:       s.conf.Export.Dir,
		ExportFileName:  s.conf.Export.FileName,
		Log:             s.log,
	})
	if err != nil {
		return nil, err
	}

	if sortSpec != "" {
		field, dir, err := parseSort(sortSpec)
		if err != nil {
			return nil, err
		}
		if err := v.Grid().SetSort(field, dir); err != nil {
			return nil, err
		}
	}
	if search != "" {
		v.OnSearchTextChanged(search)
	}
	return v, nil
}

// parseSort field 或 field:asc / field:desc
func parseSort(spec string) (string, table.SortDirection, error) {
	field, dir, found := strings.Cut(spec, ":")
	if field == "" {
		return "", table.SortNone, errors.Errorf("invalid sort %q", spec)
	}
	if !found {
		return field, table.SortAsc, nil
	}
	switch d := table.SortDirection(strings.ToLower(dir)); d {
	case table.SortAsc, table.SortDesc:
		return field, d, nil
	}
	return "", table.SortNone, errors.Errorf("invalid sort direction %q, want asc or desc", dir)
}
