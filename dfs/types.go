package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/dagviz/core"
)

// Visitation states for three-color DFS marking.
const (
	White = iota
	Gray
	Black
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or
	// TopologicalSort. DetectCycle reports false for a nil graph instead.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates the start key is not in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures DFS traversal behavior.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	Ctx            context.Context
	OnVisit        func(id core.Key) error
	OnExit         func(id core.Key) error
	MaxDepth       int
	FilterNeighbor func(id core.Key) bool
	FullTraversal  bool
}

// DefaultOptions returns Background context, no hooks, no depth limit,
// single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background(), MaxDepth: -1}
}

// WithContext sets the cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit(fn func(id core.Key) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit(fn func(id core.Key) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion to the given depth; -1 means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor filters neighbor keys; return false to skip.
func WithFilterNeighbor(fn func(id core.Key) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal runs DFS from every unvisited node, covering
// disconnected components.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	Order   []core.Key
	Depth   map[core.Key]int
	Parent  map[core.Key]core.Key
	Visited map[core.Key]bool
}
