package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
)

type sleepOutput struct {
	Requested dto.DurationResponse `json:"requested"`
	Elapsed   dto.DurationResponse `json:"elapsed"`
	Yields    uint64               `json:"yields"`
}

func (c *Command) initSleepCmd() {
	c.root.AddCommand(&cobra.Command{
		Use:   "sleep SECS [NANOS]",
		Short: "Busy-wait until strictly more than the given span has passed",
		Long: `Sleep polls the monotonic clock and yields the processor between polls.
It returns once the elapsed time is strictly greater than SECS seconds plus NANOS
nanoseconds. A negative span returns immediately.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nanos := ""
			if len(args) == 2 {
				nanos = args[1]
			}
			d, err := entity.ParseDuration(args[0], nanos)
			if err != nil {
				return err
			}

			result, err := c.clock.Sleep(d)
			if err != nil {
				return err
			}

			out := sleepOutput{
				Requested: dto.NewDurationResponse(d),
				Elapsed:   dto.NewDurationResponse(result.Elapsed),
				Yields:    result.Yields,
			}
			text := fmt.Sprintf("slept %ds %dns after %d yields", result.Elapsed.Secs, result.Elapsed.Nanos, result.Yields)
			return c.print(cmd, out, text)
		},
	})
}
