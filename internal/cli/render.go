package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/knotwork/knot/pkg/cache"
	"github.com/knotwork/knot/pkg/digraph"
	"github.com/knotwork/knot/pkg/errors"
	"github.com/knotwork/knot/pkg/observability"
	"github.com/knotwork/knot/pkg/render"
)

// Output formats supported by the render command.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatDOT: true, formatSVG: true, formatPNG: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple formats)
	formats   []string // output formats: "dot", "svg", "png"
	detailed  bool     // include degree annotations in vertex labels
	highlight bool     // highlight cycle edges in red
	noCache   bool     // disable the render cache
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a graph to DOT, SVG, or PNG",
		Long: `Render a graph to DOT, SVG, or PNG.

The render command loads a graph document (JSON or TOML) and produces
Graphviz output. DOT output is deterministic for a given graph structure.
With --highlight-cycle, edges on a detected cycle are drawn in red.

SVG and PNG results are cached by graph fingerprint, so re-rendering an
unchanged graph is fast. Use --no-cache to force a fresh render.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): dot (default), svg, png (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "annotate vertices with in/out degrees")
	cmd.Flags().BoolVar(&opts.highlight, "highlight-cycle", false, "draw cycle edges in red")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatDOT}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'dot', 'svg', or 'png')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .png, .dot), it strips that extension. This is
// used when generating multiple files (e.g., graph.svg, graph.png).
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// runRender loads the graph, renders each requested format, and writes the
// results next to the input (or to --output).
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	g, _, err := loadGraph(ctx, input)
	if err != nil {
		return err
	}

	store := c.newCache(ctx, opts.noCache)
	defer store.Close()
	keyer := cache.NewDefaultKeyer()

	renderOpts := render.Options{Detailed: opts.detailed, HighlightCycle: opts.highlight}
	dot := render.ToDOT(g, renderOpts)

	single := len(opts.formats) == 1
	base := basePath(opts.output, input)

	for _, format := range opts.formats {
		data, cached, err := c.renderFormat(ctx, g, dot, format, renderOpts, store, keyer)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}

		path := base + "." + format
		if single && opts.output != "" {
			path = opts.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}

		printSuccess("Rendered %s", path)
		printGraphLine(g.VertexCount(), g.EdgeCount(), cached)
	}
	return nil
}

// renderFormat produces one output format, consulting the cache for the
// image formats. DOT generation is pure string work and is never cached.
// The second return value reports whether the result came from the cache.
func (c *CLI) renderFormat(ctx context.Context, g *digraph.Digraph[string], dot, format string, opts render.Options, store cache.Cache, keyer cache.Keyer) ([]byte, bool, error) {
	logger := loggerFromContext(ctx)

	if format == formatDOT {
		return []byte(dot), false, nil
	}

	key := keyer.RenderKey(g.Fingerprint(), cache.RenderKeyOpts{
		Format:         format,
		Detailed:       opts.Detailed,
		HighlightCycle: opts.HighlightCycle,
	})
	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		logger.Debugf("Cache hit for %s render", format)
		return data, true, nil
	}

	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s...", format))
	spinner.Start()
	observability.Graph().OnRenderStart(ctx, format)
	start := time.Now()

	var data []byte
	var err error
	switch format {
	case formatSVG:
		data, err = render.SVG(dot)
	case formatPNG:
		data, err = render.PNG(dot)
	}
	observability.Graph().OnRenderComplete(ctx, format, time.Since(start), err)
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return nil, false, err
	}
	spinner.Stop()

	if err := store.Set(ctx, key, data, c.Config.Cache.TTL.std()); err != nil {
		logger.Debugf("Cache write failed: %v", errors.Wrap(errors.ErrCodeCache, err, "store %s render result", format))
	}
	return data, false, nil
}
