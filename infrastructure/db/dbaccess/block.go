package dbaccess

import (
	"bytes"
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/infrastructure/db/database"
	"github.com/stitchnet/stitchd/util/binaryserializer"
)

var blockKeyPrefix = []byte("block/")

func blockKey(blockID externalapi.DomainBlockID) []byte {
	key := make([]byte, len(blockKeyPrefix)+8)
	copy(key, blockKeyPrefix)
	binary.BigEndian.PutUint64(key[len(blockKeyPrefix):], uint64(blockID))
	return key
}

// StoreBlock stores the given block in the database, keyed by its id.
func StoreBlock(db database.Database, block *externalapi.DomainBlock) error {
	blockBytes, err := serializeBlock(block)
	if err != nil {
		return err
	}
	return db.Put(blockKey(block.ID), blockBytes)
}

// FetchBlock returns the block with the given id from the database. Returns a
// NotFound error if no such block was stored.
func FetchBlock(db database.Database, blockID externalapi.DomainBlockID) (*externalapi.DomainBlock, error) {
	blockBytes, err := db.Get(blockKey(blockID))
	if err != nil {
		return nil, err
	}
	return deserializeBlock(blockBytes)
}

// HasBlock returns whether a block with the given id was previously stored.
func HasBlock(db database.Database, blockID externalapi.DomainBlockID) (bool, error) {
	return db.Has(blockKey(blockID))
}

// serializeBlock serializes a block record:
// id (8 bytes) || color (1 byte) || hash (32 bytes) ||
// parent count (8 bytes) || parent ids (8 bytes each).
func serializeBlock(block *externalapi.DomainBlock) ([]byte, error) {
	w := &bytes.Buffer{}
	err := binaryserializer.PutUint64(w, uint64(block.ID))
	if err != nil {
		return nil, err
	}
	err = binaryserializer.PutUint8(w, uint8(block.Color))
	if err != nil {
		return nil, err
	}
	_, err = w.Write(block.Hash.ByteSlice())
	if err != nil {
		return nil, errors.WithStack(err)
	}
	err = binaryserializer.PutUint64(w, uint64(len(block.Parents)))
	if err != nil {
		return nil, err
	}
	for _, parent := range block.Parents {
		err = binaryserializer.PutUint64(w, uint64(parent))
		if err != nil {
			return nil, err
		}
	}
	return w.Bytes(), nil
}

func deserializeBlock(blockBytes []byte) (*externalapi.DomainBlock, error) {
	r := bytes.NewReader(blockBytes)

	id, err := binaryserializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	color, err := binaryserializer.Uint8(r)
	if err != nil {
		return nil, err
	}
	if color != uint8(externalapi.ColorBlue) && color != uint8(externalapi.ColorRed) {
		return nil, errors.Errorf("invalid block color %d", color)
	}

	hashBytes := make([]byte, externalapi.DomainHashSize)
	_, err = r.Read(hashBytes)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	hash, err := externalapi.NewDomainHashFromByteSlice(hashBytes)
	if err != nil {
		return nil, err
	}

	parentCount, err := binaryserializer.Uint64(r)
	if err != nil {
		return nil, err
	}
	if parentCount > uint64(r.Len())/8 {
		return nil, errors.Errorf("corrupt block record: claims %d parents "+
			"but only %d bytes remain", parentCount, r.Len())
	}
	var parents []externalapi.DomainBlockID
	for i := uint64(0); i < parentCount; i++ {
		parent, err := binaryserializer.Uint64(r)
		if err != nil {
			return nil, err
		}
		parents = append(parents, externalapi.DomainBlockID(parent))
	}

	return &externalapi.DomainBlock{
		ID:      externalapi.DomainBlockID(id),
		Parents: parents,
		Color:   externalapi.BlockColor(color),
		Hash:    hash,
	}, nil
}
