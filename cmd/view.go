package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var viewOpts struct {
	search string
	sort   string
}

var ViewCommand = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive employee grid",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			return errors.New("view needs a terminal, use `empgrid list` or `empgrid export` instead")
		}

		s, err := prepare(cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}
		defer s.Close()

		v, err := s.view(viewOpts.search, viewOpts.sort)
		if err != nil {
			return err
		}
		if _, err := tea.NewProgram(v.Model(), tea.WithAltScreen()).Run(); err != nil {
			s.log.WithError(err).Error("grid exited")
			return errors.Wrap(err, "run grid")
		}
		if v.SearchText() != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "last search: %q (%d rows)\n", v.SearchText(), v.Grid().DisplayedCount())
		}
		return nil
	},
}

func init() {
	ViewCommand.Flags().StringVarP(&viewOpts.search, "search", "s", "", "initial search text")
	ViewCommand.Flags().StringVar(&viewOpts.sort, "sort", "", "initial sort, field[:asc|desc]")
	RootCmd.AddCommand(ViewCommand)
}
