package logger

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/y7ut/empgrid/pkg/file"
)

// Options 日志输出
type Options struct {
	Dir   string
	Name  string
	Level string
	// Stderr 同时输出到标准错误, 交互界面占用终端时必须关闭
	Stderr bool
}

// New 创建写入日志文件的 logger, 返回的 close 用于关闭日志文件
func New(opts Options) (*logrus.Logger, func() error, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, nil, errors.Wrap(err, "parse log level")
		}
		level = parsed
	}

	writerLog, err := file.OpenAppend(opts.Dir, opts.Name)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log file")
	}

	var out io.Writer = writerLog
	if opts.Stderr {
		out = io.MultiWriter(writerLog, os.Stderr)
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})
	return log, writerLog.Close, nil
}

// Discard 测试和没有配置日志时使用
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
