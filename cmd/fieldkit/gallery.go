package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/fieldkit/internal/host"
)

func newGalleryCmd(root *rootFlags) *cobra.Command {
	var static bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Preview a field in each of its six states",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := root.resolveTheme("")
			if err != nil {
				return err
			}

			gallery := host.NewGallery(host.GalleryDocument(), theme, root.log)
			if static || !stdoutIsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), plain(gallery.Static()))
				return nil
			}

			root.log.Debug("starting interactive gallery")
			if _, err := tea.NewProgram(gallery, tea.WithAltScreen()).Run(); err != nil {
				return fmt.Errorf("failed to run gallery: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&static, "static", false, "Print the gallery once instead of running it interactively")

	return cmd
}
