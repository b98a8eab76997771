package world

import (
	"bytes"
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportGraphMatchesFloor(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, entry := generate(t, seed, 15)

		out, err := ExportGraph(g)
		require.NoError(t, err)

		order, err := out.Order()
		require.NoError(t, err)
		assert.Equal(t, g.RoomCount(), order)

		// BFS over the exported copy is an independent check of ReachableCount.
		visited := 0
		err = graph.BFS(out, g.MustRoom(entry).Coord().String(), func(string) bool {
			visited++
			return false
		})
		require.NoError(t, err)

		count, err := g.ReachableCount(entry)
		require.NoError(t, err)
		assert.Equal(t, visited, count)

		links := 0
		for _, id := range g.Rooms() {
			links += len(g.MustRoom(id).Exits())
		}
		size, err := out.Size()
		require.NoError(t, err)
		assert.Equal(t, links/2, size, "each symmetric link exports as one edge")
	}
}

func TestWriteDOT(t *testing.T) {
	g := NewGraph(ContentFunc(func(Coord) Content { return labelContent("Vault") }))
	ids := chain(t, g, Coord{}, East)
	require.NoError(t, g.MarkVisited(ids[1]))

	var buf bytes.Buffer
	require.NoError(t, WriteDOT(g, &buf))

	dot := buf.String()
	assert.Contains(t, dot, "graph")
	assert.Contains(t, dot, "(0, 0) Vault")
	assert.Contains(t, dot, "(1, 0) Vault *")
	assert.Contains(t, dot, "East")
}
