package rank

import "github.com/katalvlaran/dagviz/core"

// Rank assigns ranks using the algorithm selected by g.Config.Ranker,
// then normalizes so the minimum rank is zero.
func Rank(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}

	var err error
	switch g.Config.Ranker {
	case core.RankerLongestPath:
		err = LongestPath(g)
	case core.RankerTightTree:
		err = TightTree(g)
	default:
		err = NetworkSimplex(g)
	}
	if err != nil {
		return err
	}

	NormalizeRanks(g)

	return nil
}
