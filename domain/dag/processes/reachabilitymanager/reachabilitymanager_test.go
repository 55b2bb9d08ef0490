package reachabilitymanager_test

import (
	"testing"

	"github.com/stitchnet/stitchd/domain/dag/datastructures/blockstore"
	"github.com/stitchnet/stitchd/domain/dag/model"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dag/processes/reachabilitymanager"
	"github.com/stitchnet/stitchd/domain/dag/utils/hashes"
)

// buildTestDAG stores a block per parent set, in order, starting with genesis.
func buildTestDAG(t *testing.T, parentSets [][]externalapi.DomainBlockID) model.BlockStore {
	t.Helper()
	store := blockstore.New()
	store.Add(&externalapi.DomainBlock{
		ID:    store.AllocateID(),
		Color: externalapi.ColorBlue,
		Hash:  externalapi.NewZeroHash(),
	})
	for _, parents := range parentSets {
		id := store.AllocateID()
		store.Add(&externalapi.DomainBlock{
			ID:      id,
			Parents: parents,
			Color:   externalapi.ColorBlue,
			Hash:    hashes.BlockHash(id, parents),
		})
	}
	return store
}

func TestFutureSet(t *testing.T) {
	store := buildTestDAG(t, [][]externalapi.DomainBlockID{{0}, {0}, {1, 2}})
	rm := reachabilitymanager.New(store)

	// future(genesis) covers every block in the graph.
	genesisFuture := rm.FutureSet(0)
	if uint64(len(genesisFuture)) != store.Count() {
		t.Errorf("TestFutureSet: future(0) has %d blocks, want %d",
			len(genesisFuture), store.Count())
	}

	for id := externalapi.DomainBlockID(0); id < 4; id++ {
		if !rm.FutureSet(id).Contains(id) {
			t.Errorf("TestFutureSet: future(%d) does not contain %d", id, id)
		}
	}

	future1 := rm.FutureSet(1)
	if len(future1) != 2 || !future1.Contains(1) || !future1.Contains(3) {
		t.Errorf("TestFutureSet: future(1) is {%s}, want {1,3}", future1)
	}

	// An id that exists nowhere in the graph has a future of itself alone.
	// Classification of not-yet-linked blocks relies on this.
	futureUnlinked := rm.FutureSet(99)
	if len(futureUnlinked) != 1 || !futureUnlinked.Contains(99) {
		t.Errorf("TestFutureSet: future(99) is {%s}, want {99}", futureUnlinked)
	}
}

func TestPastSet(t *testing.T) {
	store := buildTestDAG(t, [][]externalapi.DomainBlockID{{0}, {0}, {1, 2}})
	rm := reachabilitymanager.New(store)

	past3, err := rm.PastSet(3)
	if err != nil {
		t.Fatalf("TestPastSet: PastSet(3) unexpectedly failed: %s", err)
	}
	if len(past3) != 4 {
		t.Errorf("TestPastSet: past(3) has %d blocks, want 4", len(past3))
	}

	// past(id) is a superset of the past of each parent of id.
	block3, err := store.Block(3)
	if err != nil {
		t.Fatalf("TestPastSet: Block(3) unexpectedly failed: %s", err)
	}
	for _, parent := range block3.Parents {
		parentPast, err := rm.PastSet(parent)
		if err != nil {
			t.Fatalf("TestPastSet: PastSet(%d) unexpectedly failed: %s", parent, err)
		}
		for id := range parentPast {
			if !past3.Contains(id) {
				t.Errorf("TestPastSet: past(3) is missing %d from past(%d)", id, parent)
			}
		}
	}

	_, err = rm.PastSet(99)
	if err == nil {
		t.Errorf("TestPastSet: PastSet(99) unexpectedly succeeded")
	}
}

func TestAnticoneSizeIsDirectional(t *testing.T) {
	// A chain under genesis plus one fork off genesis.
	store := buildTestDAG(t, [][]externalapi.DomainBlockID{{0}, {1}, {0}})
	rm := reachabilitymanager.New(store)

	// future(3) \ future(1) = {3}, so the size is 0.
	if size := rm.AnticoneSize(3, 1); size != 0 {
		t.Errorf("TestAnticoneSizeIsDirectional: AnticoneSize(3, 1) is %d, want 0", size)
	}
	// future(1) = {1,2}, future(3) = {3}: the difference is {1,2}.
	if size := rm.AnticoneSize(1, 3); size != 1 {
		t.Errorf("TestAnticoneSizeIsDirectional: AnticoneSize(1, 3) is %d, want 1", size)
	}
}
