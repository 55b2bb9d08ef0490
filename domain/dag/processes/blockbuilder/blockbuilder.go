package blockbuilder

import (
	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/utils/hashes"
)

// blockBuilder runs the insertion pipeline for new blocks. The order of the
// steps is part of the contract: the color is evaluated after the id is
// allocated but before the block is linked into the graph.
type blockBuilder struct {
	blockStore            model.BlockStore
	coloringManager       model.ColoringManager
	tipsManager           model.TipsManager
	selectedParentManager model.SelectedParentManager
}

// New instantiates a new BlockBuilder
func New(
	blockStore model.BlockStore,
	coloringManager model.ColoringManager,
	tipsManager model.TipsManager,
	selectedParentManager model.SelectedParentManager) model.BlockBuilder {

	return &blockBuilder{
		blockStore:            blockStore,
		coloringManager:       coloringManager,
		tipsManager:           tipsManager,
		selectedParentManager: selectedParentManager,
	}
}

// BuildBlock creates a new block referencing the given parents and returns
// its id. All parents must already exist in the store; an unknown parent
// surfaces as a NotFound error before any state changes. An empty parent
// list is a fatal contract violation - only the genesis construction path is
// allowed to bypass parents, and it does not go through here.
func (bb *blockBuilder) BuildBlock(parents []externalapi.DomainBlockID) (externalapi.DomainBlockID, error) {
	if len(parents) == 0 {
		panic(errors.New("BuildBlock was called with an empty parent list"))
	}
	for _, parent := range parents {
		if _, err := bb.blockStore.Block(parent); err != nil {
			return 0, errors.Wrapf(err, "invalid parent for new block")
		}
	}

	id := bb.blockStore.AllocateID()

	// The new block is not linked yet, so its future set is itself alone.
	color := bb.coloringManager.ClassifyBlock(id, bb.selectedParentManager.SelectedParent())

	parentsClone := make([]externalapi.DomainBlockID, len(parents))
	copy(parentsClone, parents)

	block := &externalapi.DomainBlock{
		ID:      id,
		Parents: parentsClone,
		Color:   color,
		Hash:    hashes.BlockHash(id, parents),
	}
	bb.blockStore.Add(block)

	bb.tipsManager.AddTip(id, block.Parents)

	err := bb.selectedParentManager.Recompute()
	if err != nil {
		return 0, err
	}
	return id, nil
}
