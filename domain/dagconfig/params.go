package dagconfig

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
)

const (
	// DefaultK is the default GHOSTDAG k-parameter: the maximum anticone
	// size a block may have and still be classified Blue.
	DefaultK model.KType = 15

	// DefaultStitchThreshold is the default tip-set cardinality above
	// which the stitch heuristic merges all tips into one block.
	DefaultStitchThreshold uint64 = 10
)

// Params defines the DAG parameters a node instance is configured with. The
// values are fixed for the lifetime of the process.
type Params struct {
	// K is the GHOSTDAG k-parameter.
	K model.KType

	// StitchThreshold is the tip-set cardinality above which stitching
	// kicks in.
	StitchThreshold uint64
}

// SimnetParams defines the parameters of the simulation network.
var SimnetParams = Params{
	K:               DefaultK,
	StitchThreshold: DefaultStitchThreshold,
}
