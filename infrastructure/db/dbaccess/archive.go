package dbaccess

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"

	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/infrastructure/db/database"
)

// ArchiveDAG stores every block of the given DAG, ascending by id, together
// with a manifest over the digest sequence. Archived state is diagnostic
// only; it is never fed back into consensus.
func ArchiveDAG(db database.Database, d externalapi.DAG) error {
	blocks := d.Blocks()
	for _, block := range blocks {
		err := StoreBlock(db, block)
		if err != nil {
			return err
		}
	}
	return storeManifest(db, uint64(len(blocks)), d.DigestSequence())
}

// LoadBlocks returns all archived blocks in ascending id order, verifying the
// stored manifest checksum against the loaded records.
func LoadBlocks(db database.Database) ([]*externalapi.DomainBlock, error) {
	m, err := fetchManifest(db)
	if err != nil {
		return nil, err
	}

	blocks := make([]*externalapi.DomainBlock, 0, m.blockCount)
	digestSequence := make([]byte, 0, m.blockCount*externalapi.DomainHashSize)
	for id := externalapi.DomainBlockID(0); uint64(id) < m.blockCount; id++ {
		block, err := FetchBlock(db, id)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
		digestSequence = append(digestSequence, block.Hash.ByteSlice()...)
	}

	checksum := blake2b.Sum256(digestSequence)
	if checksum != m.checksum {
		return nil, errors.Errorf("archive checksum mismatch: manifest has %x, "+
			"loaded blocks hash to %x", m.checksum, checksum)
	}
	return blocks, nil
}
