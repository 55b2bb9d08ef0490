package main

import (
	"bytes"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/stitchnet/stitchd/domain/dag/model/externalapi"
	"github.com/stitchnet/stitchd/infrastructure/network/fec"
)

// simLoop drives block creation. Each round picks a random subset of the
// current tips as parents - parent selection is arbitrary driver policy, not
// part of the consensus contract - and periodically lets the stitch heuristic
// consolidate the tip set.
func simLoop(d externalapi.DAG, cfg *configFlags, rng *rand.Rand) error {
	for i := uint64(1); i <= cfg.NumBlocks; i++ {
		parents := pickParents(d.Tips(), cfg.MaxParents, rng)
		_, err := d.CreateBlock(parents)
		if err != nil {
			return err
		}

		if i%cfg.StitchInterval == 0 {
			_, _, err := d.StitchIfNeeded()
			if err != nil {
				return err
			}
		}

		if cfg.PrintInterval > 0 && i%cfg.PrintInterval == 0 {
			err := printDAG(d)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// pickParents picks up to maxParents distinct random tips.
func pickParents(tips []externalapi.DomainBlockID, maxParents int, rng *rand.Rand) []externalapi.DomainBlockID {
	numParents := len(tips)
	if numParents > maxParents {
		numParents = maxParents
	}

	parents := make([]externalapi.DomainBlockID, 0, numParents)
	for _, tipIndex := range rng.Perm(len(tips))[:numParents] {
		parents = append(parents, tips[tipIndex])
	}
	return parents
}

// printDAG logs a full dump of the current DAG state. Diagnostic output only.
func printDAG(d externalapi.DAG) error {
	selectedParent := d.SelectedParent()
	selectedParentBlock, err := d.Block(selectedParent)
	if err != nil {
		return err
	}
	log.Infof("=== DAG state: %d blocks | %d tips | selected parent %d (%s) ===",
		d.BlockCount(), len(d.Tips()), selectedParent, selectedParentBlock.Color)

	for _, block := range d.Blocks() {
		pastSize, err := d.PastSize(block.ID)
		if err != nil {
			return err
		}
		log.Infof("%s block %d | parents %v | past size %d | hash %s",
			block.Color, block.ID, block.Parents, pastSize, block.Hash)
	}
	return nil
}

// fecRoundTrip encodes the digest sequence of the whole DAG, simulates packet
// loss, and attempts to decode the sequence back. Decode failure under heavy
// loss is an expected outcome, not an error; there is no retry.
func fecRoundTrip(d externalapi.DAG, cfg *configFlags, rng *rand.Rand) error {
	data := d.DigestSequence()

	codec, err := fec.NewReedSolomonCodec(cfg.SymbolSize, cfg.RepairPackets)
	if err != nil {
		return err
	}
	packets, err := codec.Encode(data)
	if err != nil {
		return err
	}
	log.Infof("Encoded %d bytes (%d blocks x %d) into %d packets (%d repair)",
		len(data), d.BlockCount(), externalapi.DomainHashSize, len(packets), cfg.RepairPackets)

	rng.Shuffle(len(packets), func(i, j int) {
		packets[i], packets[j] = packets[j], packets[i]
	})
	survived := packets
	if cfg.SimulatedLoss < len(packets) {
		survived = packets[:len(packets)-cfg.SimulatedLoss]
	} else {
		survived = nil
	}
	log.Infof("Simulated loss: %d packets dropped, %d remain",
		len(packets)-len(survived), len(survived))

	recovered, err := codec.Decode(survived, len(data))
	if err != nil {
		if errors.Cause(err) == fec.ErrDecodeFailed {
			log.Warnf("Reconstruction failed: %s. Increase --repairpackets or reduce --loss", err)
			return nil
		}
		return err
	}

	if !bytes.Equal(recovered, data) {
		return errors.New("reconstructed digest sequence differs from the original")
	}
	log.Infof("Full recovery: all %d block digests reconstructed byte-identically", d.BlockCount())
	return nil
}
