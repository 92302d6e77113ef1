package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hpcloud/tail"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	num  int
	feed bool
)

const tailChunk = 4096

var LogCommand = &cobra.Command{
	Use:   "logs",
	Short: "Show logs of empgrid",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		logFile := filepath.Join(cfg.Log.Path, cfg.Log.Name)

		if feed && num == 0 {
			num = 5
		}
		end, err := printTail(cmd.OutOrStdout(), logFile, num)
		if err != nil {
			return err
		}
		if !feed {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer stop()
		return follow(ctx, cmd.OutOrStdout(), logFile, end)
	},
}

// printTail 打印最后 n 行, 返回文件当前的大小
func printTail(w io.Writer, path string, n int) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open log file")
	}
	defer f.Close()

	lines, size, err := tailLines(f, n)
	if err != nil {
		return 0, err
	}
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	return size, nil
}

// tailLines 从文件末尾按块向前读取, 返回最后 n 行 (顺序不变)
func tailLines(f io.ReadSeeker, n int) ([]string, int64, error) {
	size, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, 0, errors.Wrap(err, "seek log file")
	}
	if n <= 0 || size == 0 {
		return nil, size, nil
	}

	var buf []byte
	offset := size
	for offset > 0 && bytes.Count(bytes.TrimSuffix(buf, []byte("\n")), []byte("\n")) < n {
		step := min(int64(tailChunk), offset)
		offset -= step
		chunk := make([]byte, step)
		if _, err := f.Seek(offset, io.SeekStart); err != nil {
			return nil, 0, errors.Wrap(err, "seek log file")
		}
		if _, err := io.ReadFull(f, chunk); err != nil {
			return nil, 0, errors.Wrap(err, "read log file")
		}
		buf = append(chunk, buf...)
	}

	text := bytes.TrimSuffix(buf, []byte("\n"))
	parts := bytes.Split(text, []byte("\n"))
	if len(parts) > n {
		parts = parts[len(parts)-n:]
	}
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, string(p))
	}
	return lines, size, nil
}

// follow 从 offset 开始持续输出新写入的日志, ctx 结束时退出
func follow(ctx context.Context, w io.Writer, path string, offset int64) error {
	tailer, err := tail.TailFile(path, tail.Config{
		ReOpen:    false,
		Follow:    true,
		Location:  &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		MustExist: true,
		Poll:      true,
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		return errors.Wrap(err, "follow log file")
	}
	defer tailer.Cleanup()

	for {
		select {
		case <-ctx.Done():
			return tailer.Stop()
		case line, ok := <-tailer.Lines:
			if !ok {
				return tailer.Err()
			}
			if line.Err != nil {
				return line.Err
			}
			fmt.Fprintln(w, line.Text)
		}
	}
}

func init() {
	LogCommand.Flags().IntVarP(&num, "number", "n", 5, "get last number line of logs")
	LogCommand.Flags().BoolVarP(&feed, "feed", "f", false, "feed logs")
	RootCmd.AddCommand(LogCommand)
}
