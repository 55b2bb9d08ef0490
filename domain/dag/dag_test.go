package dag_test

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/stitchnet/stitchd/domain/dag"
	"github.com/stitchnet/stitchd/domain/dag/database"
	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/domain/dagconfig"
)

func newTestDAG(t *testing.T, params *dagconfig.Params) externalapi.DAG {
	t.Helper()
	if params == nil {
		paramsCopy := dagconfig.SimnetParams
		params = &paramsCopy
	}
	return dag.NewFactory().NewDAG(params)
}

func TestGenesis(t *testing.T) {
	d := newTestDAG(t, nil)

	genesis, err := d.Block(0)
	if err != nil {
		t.Fatalf("TestGenesis: Block(0) unexpectedly failed: %s", err)
	}
	if genesis.ID != 0 {
		t.Errorf("TestGenesis: genesis id is %d, want 0", genesis.ID)
	}
	if len(genesis.Parents) != 0 {
		t.Errorf("TestGenesis: genesis has %d parents, want none", len(genesis.Parents))
	}
	if genesis.Color != externalapi.ColorBlue {
		t.Errorf("TestGenesis: genesis color is %s, want BLUE", genesis.Color)
	}
	if !genesis.Hash.Equal(externalapi.NewZeroHash()) {
		t.Errorf("TestGenesis: genesis hash is %s, want all zeroes", genesis.Hash)
	}

	if d.BlockCount() != 1 {
		t.Errorf("TestGenesis: block count is %d, want 1", d.BlockCount())
	}
	tips := d.Tips()
	if len(tips) != 1 || tips[0] != 0 {
		t.Errorf("TestGenesis: tips are %v, want [0]", tips)
	}
	if d.SelectedParent() != 0 {
		t.Errorf("TestGenesis: selected parent is %d, want 0", d.SelectedParent())
	}
}

func TestCreateBlock(t *testing.T) {
	d := newTestDAG(t, nil)

	id, err := d.CreateBlock([]externalapi.DomainBlockID{0})
	if err != nil {
		t.Fatalf("TestCreateBlock: CreateBlock unexpectedly failed: %s", err)
	}
	if id != 1 {
		t.Fatalf("TestCreateBlock: first created block got id %d, want 1", id)
	}

	block, err := d.Block(id)
	if err != nil {
		t.Fatalf("TestCreateBlock: Block(%d) unexpectedly failed: %s", id, err)
	}
	if block.Color != externalapi.ColorBlue {
		t.Errorf("TestCreateBlock: block 1 color is %s, want BLUE", block.Color)
	}

	tips := d.Tips()
	if len(tips) != 1 || tips[0] != 1 {
		t.Errorf("TestCreateBlock: tips are %v, want [1]", tips)
	}
	if d.SelectedParent() != 1 {
		t.Errorf("TestCreateBlock: selected parent is %d, want 1", d.SelectedParent())
	}
}

// TestBlockHashCommitment checks that a block's hash is the SHA-256 of its
// big-endian id followed by its sorted big-endian parent ids, regardless of
// the parent order passed to CreateBlock.
func TestBlockHashCommitment(t *testing.T) {
	d := newTestDAG(t, nil)

	for _, parents := range [][]externalapi.DomainBlockID{{0}, {0}} {
		_, err := d.CreateBlock(parents)
		if err != nil {
			t.Fatalf("TestBlockHashCommitment: CreateBlock unexpectedly failed: %s", err)
		}
	}

	// Parents deliberately passed in descending order.
	id, err := d.CreateBlock([]externalapi.DomainBlockID{2, 1})
	if err != nil {
		t.Fatalf("TestBlockHashCommitment: CreateBlock unexpectedly failed: %s", err)
	}
	block, err := d.Block(id)
	if err != nil {
		t.Fatalf("TestBlockHashCommitment: Block(%d) unexpectedly failed: %s", id, err)
	}

	writer := sha256.New()
	var buf [8]byte
	for _, value := range []uint64{uint64(id), 1, 2} {
		binary.BigEndian.PutUint64(buf[:], value)
		writer.Write(buf[:])
	}
	expectedHash, err := externalapi.NewDomainHashFromByteSlice(writer.Sum(nil))
	if err != nil {
		t.Fatalf("TestBlockHashCommitment: NewDomainHashFromByteSlice unexpectedly failed: %s", err)
	}

	if !block.Hash.Equal(expectedHash) {
		t.Errorf("TestBlockHashCommitment: block hash is %s, want %s", block.Hash, expectedHash)
	}
}

func TestCreateBlockWithEmptyParentsPanics(t *testing.T) {
	d := newTestDAG(t, nil)

	defer func() {
		if recover() == nil {
			t.Fatalf("TestCreateBlockWithEmptyParentsPanics: CreateBlock with " +
				"an empty parent list did not panic")
		}
	}()
	_, _ = d.CreateBlock(nil)
}

func TestCreateBlockWithUnknownParent(t *testing.T) {
	d := newTestDAG(t, nil)

	_, err := d.CreateBlock([]externalapi.DomainBlockID{42})
	if err == nil {
		t.Fatalf("TestCreateBlockWithUnknownParent: CreateBlock with an unknown " +
			"parent unexpectedly succeeded")
	}
	if !database.IsNotFoundError(err) {
		t.Errorf("TestCreateBlockWithUnknownParent: expected a NotFound error, got: %s", err)
	}

	// Nothing may have changed.
	if d.BlockCount() != 1 {
		t.Errorf("TestCreateBlockWithUnknownParent: block count is %d, want 1", d.BlockCount())
	}
	tips := d.Tips()
	if len(tips) != 1 || tips[0] != 0 {
		t.Errorf("TestCreateBlockWithUnknownParent: tips are %v, want [0]", tips)
	}
}

func TestBlockNotFound(t *testing.T) {
	d := newTestDAG(t, nil)

	_, err := d.Block(7)
	if err == nil {
		t.Fatalf("TestBlockNotFound: Block(7) unexpectedly succeeded")
	}
	if !database.IsNotFoundError(err) {
		t.Errorf("TestBlockNotFound: expected a NotFound error, got: %s", err)
	}
}

// TestClassificationOrder checks that classification is evaluated before the
// new block is linked into the graph. With k = 0, two sequential children of
// genesis must both be Blue: each is classified while its future set is still
// itself alone. A post-link anticone evaluation would color the second child
// differently, which would be a contract violation.
func TestClassificationOrder(t *testing.T) {
	d := newTestDAG(t, &dagconfig.Params{K: 0, StitchThreshold: dagconfig.DefaultStitchThreshold})

	for i := 0; i < 2; i++ {
		id, err := d.CreateBlock([]externalapi.DomainBlockID{0})
		if err != nil {
			t.Fatalf("TestClassificationOrder: CreateBlock unexpectedly failed: %s", err)
		}
		block, err := d.Block(id)
		if err != nil {
			t.Fatalf("TestClassificationOrder: Block(%d) unexpectedly failed: %s", id, err)
		}
		if block.Color != externalapi.ColorBlue {
			t.Errorf("TestClassificationOrder: block %d color is %s, want BLUE",
				id, block.Color)
		}
	}
}

func TestTipsNeverEmpty(t *testing.T) {
	d := newTestDAG(t, nil)

	for i := 0; i < 20; i++ {
		tips := d.Tips()
		_, err := d.CreateBlock(tips)
		if err != nil {
			t.Fatalf("TestTipsNeverEmpty: CreateBlock unexpectedly failed: %s", err)
		}
		if len(d.Tips()) == 0 {
			t.Fatalf("TestTipsNeverEmpty: tip set is empty after %d insertions", i+1)
		}
	}
}

// TestSelectedParentTieBreak checks that two Blue tips with equal past sizes
// resolve to the smaller id.
func TestSelectedParentTieBreak(t *testing.T) {
	d := newTestDAG(t, nil)

	for i := 0; i < 2; i++ {
		_, err := d.CreateBlock([]externalapi.DomainBlockID{0})
		if err != nil {
			t.Fatalf("TestSelectedParentTieBreak: CreateBlock unexpectedly failed: %s", err)
		}
	}

	tips := d.Tips()
	if len(tips) != 2 {
		t.Fatalf("TestSelectedParentTieBreak: got %d tips, want 2", len(tips))
	}
	// Blocks 1 and 2 both have a past of {genesis, self}.
	if d.SelectedParent() != 1 {
		t.Errorf("TestSelectedParentTieBreak: selected parent is %d, want 1",
			d.SelectedParent())
	}
}

func TestPastSize(t *testing.T) {
	d := newTestDAG(t, nil)

	// Build a diamond: 1 and 2 over genesis, 3 over both.
	for _, parents := range [][]externalapi.DomainBlockID{{0}, {0}, {1, 2}} {
		_, err := d.CreateBlock(parents)
		if err != nil {
			t.Fatalf("TestPastSize: CreateBlock unexpectedly failed: %s", err)
		}
	}

	tests := []struct {
		blockID  externalapi.DomainBlockID
		pastSize uint64
	}{
		{blockID: 0, pastSize: 1},
		{blockID: 1, pastSize: 2},
		{blockID: 2, pastSize: 2},
		{blockID: 3, pastSize: 4},
	}
	for _, test := range tests {
		pastSize, err := d.PastSize(test.blockID)
		if err != nil {
			t.Fatalf("TestPastSize: PastSize(%d) unexpectedly failed: %s", test.blockID, err)
		}
		if pastSize != test.pastSize {
			t.Errorf("TestPastSize: PastSize(%d) is %d, want %d",
				test.blockID, pastSize, test.pastSize)
		}
	}
}

func TestAnticoneSize(t *testing.T) {
	d := newTestDAG(t, nil)

	for _, parents := range [][]externalapi.DomainBlockID{{0}, {0}, {1, 2}} {
		_, err := d.CreateBlock(parents)
		if err != nil {
			t.Fatalf("TestAnticoneSize: CreateBlock unexpectedly failed: %s", err)
		}
	}

	tests := []struct {
		blockID, referenceID externalapi.DomainBlockID
		anticoneSize         uint64
	}{
		// 1 and 2 share their only descendant, 3.
		{blockID: 1, referenceID: 2, anticoneSize: 0},
		{blockID: 2, referenceID: 1, anticoneSize: 0},
		// future(0) = {0,1,2,3}, future(3) = {3}.
		{blockID: 0, referenceID: 3, anticoneSize: 2},
		// The approximation is directional: nothing of future(3) is
		// outside future(0).
		{blockID: 3, referenceID: 0, anticoneSize: 0},
		{blockID: 0, referenceID: 0, anticoneSize: 0},
	}
	for _, test := range tests {
		anticoneSize, err := d.AnticoneSize(test.blockID, test.referenceID)
		if err != nil {
			t.Fatalf("TestAnticoneSize: AnticoneSize(%d, %d) unexpectedly failed: %s",
				test.blockID, test.referenceID, err)
		}
		if anticoneSize != test.anticoneSize {
			t.Errorf("TestAnticoneSize: AnticoneSize(%d, %d) is %d, want %d",
				test.blockID, test.referenceID, anticoneSize, test.anticoneSize)
		}
	}
}

func TestStitch(t *testing.T) {
	params := &dagconfig.Params{K: dagconfig.DefaultK, StitchThreshold: 10}
	d := newTestDAG(t, params)

	// Eleven siblings over genesis leave eleven tips.
	for i := 0; i < 11; i++ {
		_, err := d.CreateBlock([]externalapi.DomainBlockID{0})
		if err != nil {
			t.Fatalf("TestStitch: CreateBlock unexpectedly failed: %s", err)
		}
	}
	tipsBefore := d.Tips()
	if len(tipsBefore) != 11 {
		t.Fatalf("TestStitch: got %d tips, want 11", len(tipsBefore))
	}

	mergeID, stitched, err := d.StitchIfNeeded()
	if err != nil {
		t.Fatalf("TestStitch: StitchIfNeeded unexpectedly failed: %s", err)
	}
	if !stitched {
		t.Fatalf("TestStitch: StitchIfNeeded did not stitch above the threshold")
	}

	mergeBlock, err := d.Block(mergeID)
	if err != nil {
		t.Fatalf("TestStitch: Block(%d) unexpectedly failed: %s", mergeID, err)
	}
	if len(mergeBlock.Parents) != len(tipsBefore) {
		t.Fatalf("TestStitch: merge block has %d parents, want %d",
			len(mergeBlock.Parents), len(tipsBefore))
	}
	for i, parent := range mergeBlock.Parents {
		if parent != tipsBefore[i] {
			t.Errorf("TestStitch: merge block parent %d is %d, want %d",
				i, parent, tipsBefore[i])
		}
	}

	tipsAfter := d.Tips()
	if len(tipsAfter) != 1 || tipsAfter[0] != mergeID {
		t.Errorf("TestStitch: tips after stitching are %v, want [%d]", tipsAfter, mergeID)
	}

	// At the threshold exactly, stitching must not trigger.
	_, stitched, err = d.StitchIfNeeded()
	if err != nil {
		t.Fatalf("TestStitch: StitchIfNeeded unexpectedly failed: %s", err)
	}
	if stitched {
		t.Errorf("TestStitch: StitchIfNeeded stitched a single tip")
	}
}

func TestDigestSequence(t *testing.T) {
	d := newTestDAG(t, nil)

	for _, parents := range [][]externalapi.DomainBlockID{{0}, {0, 1}} {
		_, err := d.CreateBlock(parents)
		if err != nil {
			t.Fatalf("TestDigestSequence: CreateBlock unexpectedly failed: %s", err)
		}
	}

	sequence := d.DigestSequence()
	blocks := d.Blocks()
	if len(sequence) != len(blocks)*externalapi.DomainHashSize {
		t.Fatalf("TestDigestSequence: sequence is %d bytes, want %d",
			len(sequence), len(blocks)*externalapi.DomainHashSize)
	}
	for i, block := range blocks {
		if block.ID != externalapi.DomainBlockID(i) {
			t.Fatalf("TestDigestSequence: block at position %d has id %d", i, block.ID)
		}
		chunk := sequence[i*externalapi.DomainHashSize : (i+1)*externalapi.DomainHashSize]
		chunkHash, err := externalapi.NewDomainHashFromByteSlice(chunk)
		if err != nil {
			t.Fatalf("TestDigestSequence: NewDomainHashFromByteSlice unexpectedly failed: %s", err)
		}
		if !chunkHash.Equal(block.Hash) {
			t.Errorf("TestDigestSequence: chunk %d is %s, want %s", i, chunkHash, block.Hash)
		}
	}
}
