package tipsmanager

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/utils/idset"
)

// tipsManager maintains the tip set incrementally as blocks are inserted.
type tipsManager struct {
	tips idset.IDSet
}

// New instantiates a new TipsManager whose tip set contains only the given
// genesis block.
func New(genesisID externalapi.DomainBlockID) model.TipsManager {
	return &tipsManager{
		tips: idset.FromSlice(genesisID),
	}
}

// AddTip inserts the new block id into the tip set and removes every parent
// of the new block from it. The new id is inserted before the parents are
// removed, so a removal can never leave the set empty: after any insertion
// the tip set contains at least the new block.
func (tm *tipsManager) AddTip(blockID externalapi.DomainBlockID, parents []externalapi.DomainBlockID) {
	tm.tips.Add(blockID)
	for _, parent := range parents {
		if len(tm.tips) > 1 || !tm.tips.Contains(parent) {
			tm.tips.Remove(parent)
		}
	}
}

// Tips returns the current tip set in ascending id order.
func (tm *tipsManager) Tips() []externalapi.DomainBlockID {
	return tm.tips.ToSlice()
}

// TipCount returns the cardinality of the tip set.
func (tm *tipsManager) TipCount() uint64 {
	return uint64(len(tm.tips))
}
