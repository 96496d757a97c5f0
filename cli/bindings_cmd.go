package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

type bindingsCmd struct{}

func (c *bindingsCmd) registerFlags() *cobra.Command {
	return &cobra.Command{
		Use:   "bindings",
		Short: "Print the configured bindings",
		Args:  cobra.NoArgs,
	}
}

func (c *bindingsCmd) run(cl *simpleCLIClient, cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprint(cl.out, cl.registry.Dump())
	return err
}
