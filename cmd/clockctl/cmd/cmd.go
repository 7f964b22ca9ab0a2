package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	coreport "github.com/amirhossein-jamali/timekeeper/internal/domain/port/core"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/timekeeper/internal/domain/usecase/clock"
	"github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/logger"
	timeSource "github.com/amirhossein-jamali/timekeeper/internal/infrastructure/adapter/time"
)

const (
	optionNameVerbosity = "verbosity"
	optionNameOutput    = "output"

	outputText = "text"
	outputJSON = "json"
)

func init() {
	cobra.EnableCommandSorting = false
}

// Command is the clockctl root command with its injected dependencies
type Command struct {
	root   *cobra.Command
	clock  usecase.ClockUseCase
	logger coreport.Logger

	verbosity string
	output    string
}

// Option configures a Command
type Option func(*Command)

// WithArgs replaces os.Args
func WithArgs(a ...string) Option {
	return func(c *Command) {
		c.root.SetArgs(a)
	}
}

// WithOutput sets where command output and errors are written
func WithOutput(w io.Writer) Option {
	return func(c *Command) {
		c.root.SetOut(w)
		c.root.SetErr(w)
	}
}

// WithClock replaces the kernel-backed clock service
func WithClock(clock usecase.ClockUseCase) Option {
	return func(c *Command) {
		c.clock = clock
	}
}

// NewCommand builds the command tree
func NewCommand(opts ...Option) *Command {
	c := &Command{
		root: &cobra.Command{
			Use:           "clockctl",
			Short:         "Query kernel clocks and do duration arithmetic",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}
	c.root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.setup()
	}

	for _, o := range opts {
		o(c)
	}

	c.initGlobalFlags()
	c.initClockCmds()
	c.initSleepCmd()
	c.initArithmeticCmds()
	c.initVersionCmd()

	return c
}

// Execute runs the command
func (c *Command) Execute() error {
	return c.root.Execute()
}

// Execute parses command line arguments and runs the matching command
func Execute() error {
	return NewCommand().Execute()
}

func (c *Command) initGlobalFlags() {
	flags := c.root.PersistentFlags()
	flags.StringVar(&c.verbosity, optionNameVerbosity, "silent", "log verbosity level: silent, error, warn, info or debug")
	flags.StringVarP(&c.output, optionNameOutput, "o", outputText, "output format: text or json")
}

// setup validates global flags and builds the clock service unless one was injected
func (c *Command) setup() error {
	c.output = strings.ToLower(c.output)
	if c.output != outputText && c.output != outputJSON {
		return fmt.Errorf("unknown output format %q", c.output)
	}

	if c.logger == nil {
		if c.verbosity == "silent" {
			c.logger = logger.NewNoopLogger()
		} else {
			c.logger = logger.NewZapLogger(false)
			c.logger.SetLevel(coreport.ParseLogLevel(c.verbosity))
		}
	}

	if c.clock == nil {
		c.clock = clock.NewService(timeSource.NewSystemTimeSource(), timeSource.NewSchedulerYielder(), c.logger)
	}
	return nil
}

// print writes v as indented JSON, or text when the output format is text
func (c *Command) print(cmd *cobra.Command, v any, text string) error {
	if c.output == outputJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
