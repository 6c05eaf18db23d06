package gspan_test

import (
	"testing"

	"github.com/katalvlaran/dagviz/gspan"
	"github.com/stretchr/testify/assert"
)

func threeEdgeCode() gspan.DFSCode {
	var c gspan.DFSCode
	c.Push(1, 2, "a", "A", "b")
	c.Push(2, 3, "b", "A", "c")
	c.Push(2, 1, "b", "B", "a")
	return c
}

func TestDFSCodeToGraphRendersReadableRepr(t *testing.T) {
	c := threeEdgeCode()
	g := c.ToGraph(0, true)

	want := "t # 0\n" +
		"v 1 a\n" +
		"v 2 b\n" +
		"v 3 c\n" +
		"e 1 2 a b A\n" +
		"e 2 3 b c A\n" +
		"e 2 1 b a B"
	assert.Equal(t, want, g.ToStrRepr(nil))
}

func TestDFSCodeBuildRightmostPath(t *testing.T) {
	c := threeEdgeCode()
	assert.Equal(t, []int{1, 0}, c.BuildRightmostPath())
}

func TestDFSCodeCountNodes(t *testing.T) {
	c := threeEdgeCode()
	assert.Equal(t, 3, c.CountNodes())
}
