package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/timekeeper/internal/domain/entity"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/api/dto"
)

func (c *Command) initArithmeticCmds() {
	c.root.AddCommand(
		c.newBinaryCmd("add", "Print A + B", func(cmd *cobra.Command, a, b entity.Duration) error {
			return c.printDuration(cmd, a.Add(b))
		}),
		c.newBinaryCmd("sub", "Print A - B", func(cmd *cobra.Command, a, b entity.Duration) error {
			return c.printDuration(cmd, a.Sub(b))
		}),
		c.newBinaryCmd("compare", "Print -1, 0 or 1 as A is less than, equal to or greater than B", func(cmd *cobra.Command, a, b entity.Duration) error {
			resp := dto.NewCompareResponse(a.Compare(b))
			return c.print(cmd, resp, fmt.Sprintf("%d (%s)", resp.Result, resp.Relation))
		}),
	)
}

// newBinaryCmd builds a command taking two seconds/nanoseconds pairs
func (c *Command) newBinaryCmd(name, short string, run func(cmd *cobra.Command, a, b entity.Duration) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " SECS_A NANOS_A SECS_B NANOS_B",
		Short: short,
		Long:  short + ".\nPut -- before the operands when any of them is negative.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := entity.ParseDuration(args[0], args[1])
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			b, err := entity.ParseDuration(args[2], args[3])
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}
			return run(cmd, a, b)
		},
	}
}
