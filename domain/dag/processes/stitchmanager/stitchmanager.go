package stitchmanager

import (
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
)

// stitchManager collapses an overgrown tip set into one merge block. The tip
// maintenance rule guarantees the merge block ends up as the sole tip.
type stitchManager struct {
	blockBuilder    model.BlockBuilder
	tipsManager     model.TipsManager
	stitchThreshold uint64
}

// New instantiates a new StitchManager
func New(
	blockBuilder model.BlockBuilder,
	tipsManager model.TipsManager,
	stitchThreshold uint64) model.StitchManager {

	return &stitchManager{
		blockBuilder:    blockBuilder,
		tipsManager:     tipsManager,
		stitchThreshold: stitchThreshold,
	}
}

// StitchIfNeeded builds one merge block over the full tip-set snapshot when
// the tip set has grown beyond the stitch threshold. The tip set is never
// empty after the first insertion, so the merge block always has parents.
func (sm *stitchManager) StitchIfNeeded() (externalapi.DomainBlockID, bool, error) {
	tips := sm.tipsManager.Tips()
	if uint64(len(tips)) <= sm.stitchThreshold {
		return 0, false, nil
	}

	log.Infof("Stitch activated: merging %d tips into one block", len(tips))
	id, err := sm.blockBuilder.BuildBlock(tips)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}
