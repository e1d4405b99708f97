package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/knotwork/knot/pkg/digraph"
	knoterrors "github.com/knotwork/knot/pkg/errors"
	"github.com/knotwork/knot/pkg/graphio"
)

// loadGraph reads a graph document from path and builds the graph.
// It returns the graph together with the document's name (which may be
// empty) and logs the graph size at debug level.
func loadGraph(ctx context.Context, path string) (*digraph.Digraph[string], string, error) {
	logger := loggerFromContext(ctx)

	doc, err := graphio.ReadDocumentFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", knoterrors.Wrap(knoterrors.ErrCodeFileNotFound, err, "no such file: %s", path)
		}
		return nil, "", fmt.Errorf("load graph %s: %w", path, err)
	}
	g, err := graphio.ToDigraph(doc)
	if err != nil {
		return nil, "", fmt.Errorf("load graph %s: %w", path, err)
	}

	logger.Debugf("Loaded graph: %d vertices, %d edges", g.VertexCount(), g.EdgeCount())
	return g, doc.Name, nil
}

// formatWalk joins a cycle walk into an arrow-separated string,
// e.g. "a → b → c → a".
func formatWalk(walk []string) string {
	out := ""
	for i, v := range walk {
		if i > 0 {
			out += " " + iconArrow + " "
		}
		out += v
	}
	return out
}
