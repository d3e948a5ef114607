package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCMD() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "titlegen %s\n", version)
		},
	}
}
