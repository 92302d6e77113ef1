package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var RootCmd = &cobra.Command{
	Use:   "empgrid",
	Short: "Browse, search and export the employee directory",
	Long: `
                                   _     _
   ___ _ __ ___  _ __   __ _ _ __(_) __| |
  / _ \ '_ ` + "`" + ` _ \| '_ \ / _` + "`" + ` | '__| |/ _` + "`" + ` |
 |  __/ | | | | | |_) | (_| | |  | | (_| |
  \___|_| |_| |_| .__/ \__, |_|  |_|\__,_|
                |_|    |___/
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "./empgrid.conf", "config empgrid file")
}
