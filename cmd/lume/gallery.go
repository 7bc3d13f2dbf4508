package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lumeui/lume/internal/gallery"
	"github.com/lumeui/lume/theme"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the component demo page to an HTML file",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(flags)
			if err != nil {
				return err
			}
			log = log.WithComponent("gallery")

			active := theme.Active()
			log.Debug("rendering gallery", "theme", active.Name, "output", output)

			page, err := gallery.Page(active)
			if err != nil {
				log.Error(err, "gallery render failed")
				return err
			}

			if err := os.WriteFile(output, []byte(page), 0o644); err != nil {
				log.Error(err, "writing gallery output failed")
				return fmt.Errorf("write %s: %w", output, err)
			}

			sections := len(gallery.Sections())
			log.Info("gallery rendered", "sections", sections, "bytes", len(page))
			fmt.Fprintln(cmd.OutOrStdout(), gallerySummary(sections, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "gallery.html", "Output file path")

	return cmd
}

var summaryStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}).
	Bold(true)

func gallerySummary(sections int, output string) string {
	message := fmt.Sprintf("✓ rendered %d sections to %s", sections, output)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return message
	}
	return summaryStyle.Render(message)
}
