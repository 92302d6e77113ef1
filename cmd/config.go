package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/y7ut/empgrid/conf"
)

var InitConfigCommand = &cobra.Command{
	Use:   "config",
	Short: "A tool to generate configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := ParseConfig(createHelper)
		confFile := cmd.Flag("file").Value.String()
		if err := cfg.Save(confFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file saved to %s\n", confFile)
		return nil
	},
}

var createHelper bool

// ParseConfig 默认配置, helper 为 true 时从 stdin 逐项询问, 空输入保留默认值
func ParseConfig(helper bool) *conf.GridConf {
	cfg := conf.Default()
	if !helper {
		return cfg
	}
	p := newPrompter(os.Stdin, os.Stdout)
	p.fill(cfg)
	return cfg
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewScanner(in), out: out}
}

func (p *prompter) fill(cfg *conf.GridConf) {
	fmt.Fprintln(p.out, "let's generate a config file for you: ")

	cfg.App.Name = p.ask("1. Enter the name of the application", cfg.App.Name)
	cfg.Data.Path = p.ask("2. Enter the path of the employees json file", cfg.Data.Path)
	cfg.App.Locale = p.ask("3. Enter the number locale (empty uses LANG)", cfg.App.Locale)
	if n, err := strconv.Atoi(p.ask("4. Enter the page size", strconv.Itoa(cfg.Grid.PageSize))); err == nil && n > 0 {
		cfg.Grid.PageSize = n
	}
	cfg.Export.Dir = p.ask("5. Enter the export directory", cfg.Export.Dir)
	cfg.Log.Path = p.ask("6. Enter the log directory", cfg.Log.Path)
}

// ask 读取一行输入, 空行返回默认值
func (p *prompter) ask(prompt, def string) string {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", prompt, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", prompt)
	}
	if !p.in.Scan() {
		return def
	}
	if input := strings.TrimSpace(p.in.Text()); input != "" {
		return input
	}
	return def
}

func init() {
	InitConfigCommand.Flags().StringP("file", "f", "empgrid.conf", "output file name")
	InitConfigCommand.Flags().BoolVarP(&createHelper, "step", "s", false, "create with helper ")
	RootCmd.AddCommand(InitConfigCommand)
}
