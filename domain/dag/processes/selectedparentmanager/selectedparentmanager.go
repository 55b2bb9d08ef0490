package selectedparentmanager

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// selectedParentManager tracks the chain-defining ancestor: the Blue tip with
// the heaviest past.
type selectedParentManager struct {
	blockStore          model.BlockStore
	reachabilityManager model.ReachabilityManager
	tipsManager         model.TipsManager

	selectedParent externalapi.DomainBlockID
}

// New instantiates a new SelectedParentManager. The selected parent starts at
// genesis.
func New(
	blockStore model.BlockStore,
	reachabilityManager model.ReachabilityManager,
	tipsManager model.TipsManager,
	genesisID externalapi.DomainBlockID) model.SelectedParentManager {

	return &selectedParentManager{
		blockStore:          blockStore,
		reachabilityManager: reachabilityManager,
		tipsManager:         tipsManager,
		selectedParent:      genesisID,
	}
}

// SelectedParent returns the current selected parent.
func (spm *selectedParentManager) SelectedParent() externalapi.DomainBlockID {
	return spm.selectedParent
}

// Recompute picks the Blue tip with the largest past set. Tips are visited in
// ascending id order and a new candidate must strictly exceed the best seen
// so far, so ties deterministically resolve to the smallest id. When no Blue
// tip exists the previous selected parent stays in place.
func (spm *selectedParentManager) Recompute() error {
	found := false
	var best externalapi.DomainBlockID
	var bestPastSize uint64

	for _, tip := range spm.tipsManager.Tips() {
		block, err := spm.blockStore.Block(tip)
		if err != nil {
			return err
		}
		if block.Color != externalapi.ColorBlue {
			continue
		}
		past, err := spm.reachabilityManager.PastSet(tip)
		if err != nil {
			return err
		}
		pastSize := uint64(len(past))
		if !found || pastSize > bestPastSize {
			found = true
			best = tip
			bestPastSize = pastSize
		}
	}

	if found {
		spm.selectedParent = best
	}
	return nil
}
