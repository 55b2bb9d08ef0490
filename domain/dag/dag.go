package dag

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// dag implements externalapi.DAG by delegating to the managers wired up by
// the factory. All state behind it is owned exclusively by this instance and
// is mutated strictly serially, so no locking is involved.
type dag struct {
	blockStore            model.BlockStore
	reachabilityManager   model.ReachabilityManager
	coloringManager       model.ColoringManager
	tipsManager           model.TipsManager
	selectedParentManager model.SelectedParentManager
	blockBuilder          model.BlockBuilder
	stitchManager         model.StitchManager
}

// CreateBlock inserts a new block referencing the given parents and returns
// its id.
func (d *dag) CreateBlock(parents []externalapi.DomainBlockID) (externalapi.DomainBlockID, error) {
	id, err := d.blockBuilder.BuildBlock(parents)
	if err != nil {
		return 0, err
	}
	log.Debugf("Created block %d with parents %v", id, parents)
	return id, nil
}

// StitchIfNeeded collapses the tip set into a single merge block if it has
// grown beyond the stitch threshold.
func (d *dag) StitchIfNeeded() (externalapi.DomainBlockID, bool, error) {
	return d.stitchManager.StitchIfNeeded()
}

// Block returns the block with the given id, or a NotFound error.
func (d *dag) Block(blockID externalapi.DomainBlockID) (*externalapi.DomainBlock, error) {
	return d.blockStore.Block(blockID)
}

// Blocks returns all blocks in the DAG in ascending id order.
func (d *dag) Blocks() []*externalapi.DomainBlock {
	return d.blockStore.Blocks()
}

// BlockCount returns the amount of blocks in the DAG, genesis included.
func (d *dag) BlockCount() uint64 {
	return d.blockStore.Count()
}

// Tips returns the current tip set in ascending id order.
func (d *dag) Tips() []externalapi.DomainBlockID {
	return d.tipsManager.Tips()
}

// SelectedParent returns the current selected parent.
func (d *dag) SelectedParent() externalapi.DomainBlockID {
	return d.selectedParentManager.SelectedParent()
}

// PastSize returns the cardinality of the past set of the given block.
func (d *dag) PastSize(blockID externalapi.DomainBlockID) (uint64, error) {
	past, err := d.reachabilityManager.PastSet(blockID)
	if err != nil {
		return 0, err
	}
	return uint64(len(past)), nil
}

// AnticoneSize returns the directional anticone approximation between the two
// given blocks.
func (d *dag) AnticoneSize(blockID, referenceID externalapi.DomainBlockID) (uint64, error) {
	if _, err := d.blockStore.Block(blockID); err != nil {
		return 0, err
	}
	if _, err := d.blockStore.Block(referenceID); err != nil {
		return 0, err
	}
	return d.reachabilityManager.AnticoneSize(blockID, referenceID), nil
}

// DigestSequence returns the hashes of all blocks in ascending id order,
// concatenated into one buffer of 32 bytes per block. This is the exact
// byte sequence handed to the FEC collaborator.
func (d *dag) DigestSequence() []byte {
	blocks := d.blockStore.Blocks()
	sequence := make([]byte, 0, len(blocks)*externalapi.DomainHashSize)
	for _, block := range blocks {
		sequence = append(sequence, block.Hash.ByteSlice()...)
	}
	return sequence
}
