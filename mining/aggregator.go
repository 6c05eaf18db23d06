package mining

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/katalvlaran/dagviz/gspan"
	log "github.com/sirupsen/logrus"
)

// OutputMode selects how accepted patterns are delivered to the caller.
type OutputMode int

const (
	// Batch accumulates every pattern in memory and returns them once
	// mining completes.
	Batch OutputMode = iota
	// Stream writes each pattern to Sink immediately as it is found.
	Stream
	// Channel pushes each pattern over Results as it is found, closing
	// the channel once mining completes.
	Channel
)

// Encoding selects the rendering of one pattern for Stream/Sink output.
type Encoding int

const (
	// Text renders the `t # id * btw(...) inn(...) ttl(...)` block format.
	Text Encoding = iota
	// JSON renders one Record document per pattern.
	JSON
)

// MinerConfig is the external configuration for Subgraph: min_sup,
// inner_min_sup, min/max vertex bounds, and the output mode/encoding/sink.
type MinerConfig struct {
	MinSup      int
	InnerMinSup int
	MinVertices int
	MaxVertices int
	Directed    bool
	Mode        OutputMode
	Encoding    Encoding
	Sink        io.Writer   // required when Mode == Stream
	Results     chan Record // required when Mode == Channel
	// Context, when non-nil and in Channel mode, is checked before every
	// send: once it is done, Accept treats the receiving side as gone,
	// reports ErrMiningCancelled, and Subgraph unwinds the miner's
	// recursion instead of blocking on (or panicking over) a channel the
	// consumer has stopped reading.
	Context context.Context
}

// Validate checks MinerConfig's invariants: both support floors must be
// positive, the vertex-count window must be non-empty, and the selected
// output mode's companion field must be present.
func (c MinerConfig) Validate() error {
	if c.MinSup < 1 || c.InnerMinSup < 1 {
		return ErrInvalidSupport
	}
	if c.MinVertices > c.MaxVertices {
		return ErrInvalidVertexBounds
	}
	if c.Mode == Stream && c.Sink == nil {
		return ErrStreamSinkRequired
	}
	if c.Mode == Channel && c.Results == nil {
		return ErrStreamSinkRequired
	}
	return nil
}

// Aggregator owns every piece of state accumulated while mining one set of
// graphs: every field here is scoped to one Subgraph invocation, so
// concurrent callers mining disjoint graph sets never share state.
type Aggregator struct {
	cfg     MinerConfig
	records []Record
	ids     map[int]string
}

// NewAggregator builds an Aggregator for one mining run under cfg.
func NewAggregator(cfg MinerConfig) *Aggregator {
	return &Aggregator{cfg: cfg, ids: map[int]string{}}
}

// patternID returns a stable uuid.New()-derived string ID for p's gspan
// sequence number, minting one on first sight and reusing it thereafter.
func (a *Aggregator) patternID(p gspan.Pattern) string {
	if id, ok := a.ids[p.ID]; ok {
		return id
	}
	id := uuid.New().String()
	a.ids[p.ID] = id
	return id
}

// Accept re-gates p by MinSup/InnerMinSup/[MinVertices,MaxVertices]
// defensively (idempotent with the miner's own gating), then emits it per
// a.cfg.Mode/Encoding. Returns false if p was rejected by the defensive
// gate. In Channel mode, a cancelled a.cfg.Context surfaces as
// ErrMiningCancelled instead of blocking on (or panicking from) a send the
// receiving side has withdrawn from.
func (a *Aggregator) Accept(p gspan.Pattern) (bool, error) {
	if p.Support.Between < a.cfg.MinSup {
		return false, nil
	}
	if p.Support.InnerMax < a.cfg.InnerMinSup {
		return false, nil
	}
	n := len(p.Graph.Vertices)
	if a.cfg.MaxVertices > 0 && (n < a.cfg.MinVertices || n > a.cfg.MaxVertices) {
		return false, nil
	}

	rec := toRecord(p)
	id := a.patternID(p)
	log.WithFields(log.Fields{"pattern_id": id, "vertices": n, "between_sup": rec.BetweenSup}).Debug("mining: pattern accepted")

	switch a.cfg.Mode {
	case Batch:
		a.records = append(a.records, rec)
	case Stream:
		if err := a.writeStream(p, rec); err != nil {
			return true, err
		}
	case Channel:
		if a.cfg.Results == nil {
			return true, ErrStreamSinkRequired
		}
		var cancelled <-chan struct{}
		if a.cfg.Context != nil {
			cancelled = a.cfg.Context.Done()
		}
		select {
		case a.cfg.Results <- rec:
		case <-cancelled:
			return true, ErrMiningCancelled
		}
	}

	return true, nil
}

func (a *Aggregator) writeStream(p gspan.Pattern, rec Record) error {
	switch a.cfg.Encoding {
	case Text:
		_, err := io.WriteString(a.cfg.Sink, renderText(p))
		return err
	case JSON:
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := a.cfg.Sink.Write(b); err != nil {
			return err
		}
		_, err = io.WriteString(a.cfg.Sink, ",")
		return err
	default:
		return fmt.Errorf("mining: unknown encoding %d", a.cfg.Encoding)
	}
}

// Records returns every pattern accepted so far in Batch mode, rendered to
// Record form. Stream and Channel modes keep no records, so it returns nil
// for them.
func (a *Aggregator) Records() []Record {
	return a.records
}
