package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper"
)

func (c *Command) initVersionCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), timekeeper.Version)
		},
	})
}
