package dag

import (
	"github.com/stitchnet/stitchd/domain/dag/datastructures/blockstore"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/processes/blockbuilder"
	"github.com/stitchnet/stitchd/domain/dag/processes/coloringmanager"
	"github.com/stitchnet/stitchd/domain/dag/processes/reachabilitymanager"
	"github.com/stitchnet/stitchd/domain/dag/processes/selectedparentmanager"
	"github.com/stitchnet/stitchd/domain/dag/processes/stitchmanager"
	"github.com/stitchnet/stitchd/domain/dag/processes/tipsmanager"
	"github.com/stitchnet/stitchd/domain/dagconfig"
)

// Factory instantiates new DAGs
type Factory interface {
	NewDAG(dagParams *dagconfig.Params) externalapi.DAG
}

type factory struct{}

// NewFactory creates a new DAG factory
func NewFactory() Factory {
	return &factory{}
}

// NewDAG instantiates a new DAG with the given parameters. Genesis - id 0,
// no parents, Blue, all-zero hash - is constructed here directly; it never
// goes through the block builder.
func (f *factory) NewDAG(dagParams *dagconfig.Params) externalapi.DAG {
	// Data structures
	blockStore := blockstore.New()

	genesis := &externalapi.DomainBlock{
		ID:      blockStore.AllocateID(),
		Parents: nil,
		Color:   externalapi.ColorBlue,
		Hash:    externalapi.NewZeroHash(),
	}
	blockStore.Add(genesis)

	// Processes
	reachabilityManager := reachabilitymanager.New(
		blockStore)
	coloringManager := coloringmanager.New(
		reachabilityManager,
		dagParams.K)
	tipsManager := tipsmanager.New(
		genesis.ID)
	selectedParentManager := selectedparentmanager.New(
		blockStore,
		reachabilityManager,
		tipsManager,
		genesis.ID)
	blockBuilder := blockbuilder.New(
		blockStore,
		coloringManager,
		tipsManager,
		selectedParentManager)
	stitchManager := stitchmanager.New(
		blockBuilder,
		tipsManager,
		dagParams.StitchThreshold)

	return &dag{
		blockStore:            blockStore,
		reachabilityManager:   reachabilityManager,
		coloringManager:       coloringManager,
		tipsManager:           tipsManager,
		selectedParentManager: selectedParentManager,
		blockBuilder:          blockBuilder,
		stitchManager:         stitchManager,
	}
}
