package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/knotwork/knot/pkg/cache"
	"github.com/knotwork/knot/pkg/digraph"
)

// orderCommand creates the order command for topological sorting.
func (c *CLI) orderCommand() *cobra.Command {
	var (
		reverse bool
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "order [file]",
		Short: "Print a topological order of a graph",
		Long: `Print a topological order of a graph.

The order command loads a graph document (JSON or TOML) and prints its
vertices in dependency order: every edge points from an earlier vertex to a
later one. With --reverse the order is flipped, which is useful for
teardown sequences. The graph must be acyclic; if a cycle exists it is
printed as a witness and the command exits 1.

Computed orders are cached by graph fingerprint. Use --no-cache to force a
fresh sort.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			g, _, err := loadGraph(ctx, args[0])
			if err != nil {
				return err
			}

			store := c.newCache(ctx, noCache)
			defer store.Close()
			keyer := cache.NewDefaultKeyer()

			prog := newProgress(logger)
			order, cached, err := cachedOrder(ctx, g, store, keyer, c.Config.Cache.TTL.std())
			if err != nil {
				if errors.Is(err, digraph.ErrCycle) {
					printError("Cycle found in %s", args[0])
					printDetail("%s", formatWalk(g.Cycle()))
					return errCycleFound
				}
				return err
			}
			if cached {
				prog.done(fmt.Sprintf("Loaded order for %d vertices from cache", len(order)))
			} else {
				prog.done(fmt.Sprintf("Sorted %d vertices", len(order)))
			}

			if reverse {
				slices.Reverse(order)
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				return enc.Encode(order)
			}
			for _, v := range order {
				fmt.Println(v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reverse, "reverse", false, "print the order back to front")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the order as a JSON array")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}
