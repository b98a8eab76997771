package world

import (
	"errors"
	"fmt"
	"io"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// ExportGraph copies the floor into an undirected graph keyed by coordinate.
// Each link becomes one edge labelled with the direction it was walked from
// the room created first.
func ExportGraph(g *Graph) (graph.Graph[string, Coord], error) {
	out := graph.New(Coord.String)

	for _, r := range g.rooms {
		label := r.Description()
		if r.visited {
			label += " *"
		}
		if err := out.AddVertex(r.coord, graph.VertexAttribute("label", r.coord.String()+" "+label)); err != nil {
			return nil, fmt.Errorf("export room %s: %w", r.coord, err)
		}
	}

	for _, r := range g.rooms {
		for _, d := range Directions {
			n, ok := r.Neighbor(d)
			if !ok {
				continue
			}
			other := g.rooms[n.index]
			err := out.AddEdge(r.coord.String(), other.coord.String(), graph.EdgeAttribute("label", d.String()))
			if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
				return nil, fmt.Errorf("export link %s %s: %w", r.coord, d, err)
			}
		}
	}
	return out, nil
}

// WriteDOT writes the floor as a Graphviz DOT document.
func WriteDOT(g *Graph, w io.Writer) error {
	out, err := ExportGraph(g)
	if err != nil {
		return err
	}
	return draw.DOT(out, w)
}
