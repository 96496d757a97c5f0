package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/twitter/goice/common/endpoints"
)

type serveCmd struct {
	addr  string
	latch time.Duration
}

func (c *serveCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "serve",
		Short: "Serve the registry's stats and bindings over http until killed",
		Args:  cobra.NoArgs,
	}
	r.Flags().StringVar(&c.addr, "addr", "localhost:9091", "http bind address")
	r.Flags().DurationVar(&c.latch, "stats_latch", 15*time.Second, "snapshot stats at this interval; scrapes see the last snapshot")
	return r
}

func (c *serveCmd) run(cl *simpleCLIClient, cmd *cobra.Command, args []string) error {
	defer cl.cancelStats()
	return endpoints.NewTwitterServer(c.addr, cl.stat, cl.registry).Serve()
}
