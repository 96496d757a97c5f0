package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type statsCmd struct {
	times int
}

func (c *statsCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "stats",
		Short: "Resolve every known type and print the registry's stats",
		Args:  cobra.NoArgs,
	}
	r.Flags().IntVar(&c.times, "times", 3, "resolve each type this many times")
	return r
}

func (c *statsCmd) run(cl *simpleCLIClient, cmd *cobra.Command, args []string) error {
	for i := 0; i < c.times; i++ {
		for _, resolve := range resolvers {
			if _, err := resolve(cl.registry, "", false); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintf(cl.out, "%s\n", cl.stat.Render(true))
	return err
}
