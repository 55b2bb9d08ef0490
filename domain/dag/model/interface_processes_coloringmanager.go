package model

import "github.com/stitchnet/stitchd/domain/dag/model/externalapi"

// ColoringManager classifies blocks Blue or Red relative to the current
// selected parent, using the k-parameter anticone tolerance.
type ColoringManager interface {
	// ClassifyBlock returns the color of the block with the given id
	// relative to selectedParent. It is called before the new block is
	// linked into the graph, so the block's future set at classification
	// time is the block itself alone.
	ClassifyBlock(blockID, selectedParent externalapi.DomainBlockID) externalapi.BlockColor
}
