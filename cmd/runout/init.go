package main

import (
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/runout/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example project file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(config.Example())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return os.WriteFile(args[0], data, 0o644)
		},
	}
}
