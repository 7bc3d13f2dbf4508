package main

import (
	"github.com/spf13/cobra"

	"github.com/lumeui/lume/internal/logger"
	"github.com/lumeui/lume/theme"
)

type rootFlags struct {
	verbose   bool
	themePath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lume",
		Short:         "Lume renders server-side UI components with utility-class styling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.themePath == "" {
				return nil
			}
			loaded, err := theme.Load(flags.themePath)
			if err != nil {
				return err
			}
			theme.Set(*loaded)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.themePath, "theme", "", "Path to a YAML theme file")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newLogger(flags *rootFlags) (*logger.Logger, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	return logger.New(logger.Options{Level: level, Pretty: true})
}
