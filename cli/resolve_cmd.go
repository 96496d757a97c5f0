package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/twitter/goice/demo/shapes"
	"github.com/twitter/goice/ice"
)

// resolvers are the types icecl knows how to ask for, by name.
var resolvers = map[string]func(r *ice.Registry, name string, named bool) (interface{}, error){
	"Shape": func(r *ice.Registry, name string, named bool) (interface{}, error) {
		if named {
			return ice.GetNamed[shapes.Shape](r, name)
		}
		return ice.Get[shapes.Shape](r)
	},
	"Canvas": func(r *ice.Registry, name string, named bool) (interface{}, error) {
		if named {
			return ice.GetNamed[*shapes.Canvas](r, name)
		}
		return ice.Get[*shapes.Canvas](r)
	},
}

func resolverNames() string {
	names := make([]string, 0, len(resolvers))
	for n := range resolvers {
		names = append(names, n)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

type resolveCmd struct {
	name  string
	times int
}

func (c *resolveCmd) registerFlags() *cobra.Command {
	r := &cobra.Command{
		Use:   "resolve " + resolverNames(),
		Short: "Resolve a type and print the instances",
		Args:  cobra.ExactArgs(1),
	}
	r.Flags().StringVar(&c.name, "name", "", "resolve the binding with this name")
	r.Flags().IntVar(&c.times, "times", 1, "resolve this many times")
	return r
}

func (c *resolveCmd) run(cl *simpleCLIClient, cmd *cobra.Command, args []string) error {
	resolve, ok := resolvers[args[0]]
	if !ok {
		return &UsageError{fmt.Errorf("can't resolve %q, try one of %s", args[0], resolverNames())}
	}
	if c.times < 1 {
		return &UsageError{fmt.Errorf("--times must be positive, was %d", c.times)}
	}

	named := cmd.Flags().Changed("name")
	seen := make(map[interface{}]int)
	for i := 0; i < c.times; i++ {
		v, err := resolve(cl.registry, c.name, named)
		if err != nil {
			return err
		}
		if _, ok := seen[v]; !ok {
			seen[v] = len(seen)
		}
		fmt.Fprintf(cl.out, "%d: %v (instance #%d)\n", i, v, seen[v])
	}
	return nil
}
