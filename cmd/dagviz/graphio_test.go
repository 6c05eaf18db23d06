package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadGraphFileBuildsNodesAndEdges(t *testing.T) {
	path := writeTempFile(t, `{
		"graph": {
			"directed": true,
			"nodes": [{"id": "a", "label": "Conv"}, {"id": "b", "label": "Relu"}],
			"edges": [{"source": "a", "target": "b"}]
		}
	}`)

	g, err := readGraphFile(path)
	require.NoError(t, err)
	assert.Len(t, g.Nodes(), 2)
	assert.True(t, g.IsDirected)
}

func TestReadGraphFileMissingGraphErrors(t *testing.T) {
	path := writeTempFile(t, `{"graphs": []}`)
	_, err := readGraphFile(path)
	assert.Error(t, err)
}

func TestReadGraphSetFileBuildsMultipleGraphs(t *testing.T) {
	path := writeTempFile(t, `{
		"graphs": [
			{"directed": true, "nodes": [{"id": "a", "label": "A"}], "edges": []},
			{"directed": true, "nodes": [{"id": "b", "label": "B"}], "edges": []}
		]
	}`)

	gs, err := readGraphSetFile(path)
	require.NoError(t, err)
	assert.Len(t, gs, 2)
}

func TestReadGraphFileSkipsEdgesWithUnknownEndpoints(t *testing.T) {
	path := writeTempFile(t, `{
		"graph": {
			"directed": true,
			"nodes": [{"id": "a", "label": "A"}],
			"edges": [{"source": "a", "target": "missing"}]
		}
	}`)

	g, err := readGraphFile(path)
	require.NoError(t, err)
	assert.Len(t, g.Nodes(), 1)
	assert.Empty(t, g.Edges())
}
