package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
)

const optionNameRFC3339 = "rfc3339"

func (c *Command) initClockCmds() {
	c.root.AddCommand(&cobra.Command{
		Use:   "monotonic",
		Short: "Print the monotonic clock reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.clock.Monotonic()
			if err != nil {
				return err
			}
			return c.printDuration(cmd, d)
		},
	})

	realtimeCmd := &cobra.Command{
		Use:   "realtime",
		Short: "Print the wall clock reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := c.clock.Realtime()
			if err != nil {
				return err
			}

			asTime, err := cmd.Flags().GetBool(optionNameRFC3339)
			if err != nil {
				return err
			}
			if asTime && c.output == outputText {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), d.Time().Format(time.RFC3339Nano))
				return err
			}
			return c.printDuration(cmd, d)
		},
	}
	realtimeCmd.Flags().Bool(optionNameRFC3339, false, "print the reading as an RFC 3339 timestamp")
	c.root.AddCommand(realtimeCmd)
}

func (c *Command) printDuration(cmd *cobra.Command, d entity.Duration) error {
	return c.print(cmd, dto.NewDurationResponse(d), fmt.Sprintf("%s (secs=%d nanos=%d)", d, d.Secs, d.Nanos))
}
