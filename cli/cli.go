// Package cli is the command-line client to an ice Registry built from a
// shapes configuration. It is used by binaries/icecl.
package cli

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/twitter/goice/common/stats"
	"github.com/twitter/goice/config/jsonconfig"
	"github.com/twitter/goice/demo/shapes"
	"github.com/twitter/goice/ice"
)

// CLIClient runs one command line.
type CLIClient interface {
	Exec() error
}

type simpleCLIClient struct {
	rootCmd *cobra.Command
	out     io.Writer
	asset   func(string) ([]byte, error)

	// populated by flags
	configText string
	logLevel   string

	stat        stats.StatsReceiver
	cancelStats func()
	registry    *ice.Registry
}

func (c *simpleCLIClient) Exec() error {
	return c.rootCmd.Execute()
}

// NewCLIClient makes a client that reads named configurations with asset and
// prints to out.
func NewCLIClient(asset func(string) ([]byte, error), out io.Writer) CLIClient {
	if out == nil {
		out = os.Stdout
	}
	c := &simpleCLIClient{out: out, asset: asset}

	c.rootCmd = &cobra.Command{
		Use:               "icecl",
		Short:             "icecl builds an ice Registry from a shapes configuration and queries it",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	c.rootCmd.SetOut(out)
	c.rootCmd.PersistentFlags().StringVar(&c.configText, "config", "local.circle", "config file name or literal JSON")
	c.rootCmd.PersistentFlags().StringVar(&c.logLevel, "log_level", "info", "log everything at this level and above (error|info|debug)")

	c.addCmd(&resolveCmd{})
	c.addCmd(&bindingsCmd{})
	c.addCmd(&statsCmd{})
	c.addCmd(&serveCmd{})

	return c
}

// SetArgs replaces os.Args[1:], for tests.
func SetArgs(cl CLIClient, args []string) {
	cl.(*simpleCLIClient).rootCmd.SetArgs(args)
}

func (c *simpleCLIClient) setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(c.logLevel)
	if err != nil {
		return &UsageError{err}
	}
	log.SetLevel(level)

	text, err := jsonconfig.GetConfigText(c.configText, c.asset)
	if err != nil {
		return &ConfigError{err}
	}
	conf, err := shapes.Schema().Parse(text)
	if err != nil {
		return &ConfigError{err}
	}

	c.stat, c.cancelStats = stats.NewCustomStatsReceiver(stats.NewFinagleStatsRegistry, statsLatch(cmd))
	c.stat = c.stat.Precision(time.Millisecond)
	c.registry, err = ice.New(conf, ice.WithStats(c.stat))
	if err != nil {
		return errors.WithMessage(err, "building registry")
	}
	return nil
}

// statsLatch is the latch interval a command asked for with --stats_latch.
// Commands without the flag render once and get an unlatched receiver.
func statsLatch(cmd *cobra.Command) time.Duration {
	if d, err := cmd.Flags().GetDuration("stats_latch"); err == nil {
		return d
	}
	return 0
}

func (c *simpleCLIClient) addCmd(cmd command) {
	cobraCmd := cmd.registerFlags()
	cobraCmd.RunE = func(innerCmd *cobra.Command, args []string) error {
		return cmd.run(c, innerCmd, args)
	}
	c.rootCmd.AddCommand(cobraCmd)
}

type command interface {
	registerFlags() *cobra.Command
	run(cl *simpleCLIClient, cmd *cobra.Command, args []string) error
}

// UsageError is returned for bad flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError is returned when the configuration can't be read or parsed.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "config: " + e.Err.Error() }
func (e *ConfigError) Unwrap() error { return e.Err }
