package fec

import (
	"bytes"

	"github.com/klauspost/reedsolomon"
	"github.com/pkg/errors"
)

// ErrDecodeFailed denotes that too few packets survived to reconstruct the
// original payload. This is an expected outcome under heavy loss, reported to
// the caller as-is; there is no retry logic at this layer.
var ErrDecodeFailed = errors.New("not enough packets to reconstruct the payload")

// Packet is a single encoded symbol. Packets are self-identifying through
// their index, so an arbitrarily reordered subset can be fed back into Decode.
type Packet struct {
	Index   int
	Payload []byte
}

// Codec encodes a byte buffer into loss-tolerant packets and decodes the
// original buffer back from a possibly incomplete subset of them.
type Codec interface {
	// Encode encodes data into a set of source and repair packets.
	Encode(data []byte) ([]*Packet, error)

	// Decode reconstructs the original data, whose length must be given,
	// from the surviving packets. Returns ErrDecodeFailed when the packets
	// do not suffice.
	Decode(packets []*Packet, dataLen int) ([]byte, error)
}

// reedSolomonCodec implements Codec with Reed-Solomon erasure coding: the
// buffer is cut into symbol-size source shards and repairPackets parity
// shards are appended. Any subset of packets that covers the source shard
// count reconstructs the buffer; losing more than repairPackets packets is
// beyond correction capacity.
type reedSolomonCodec struct {
	symbolSize    int
	repairPackets int
}

// NewReedSolomonCodec creates a Codec with the given symbol size and repair
// packet count.
func NewReedSolomonCodec(symbolSize, repairPackets int) (Codec, error) {
	if symbolSize <= 0 {
		return nil, errors.Errorf("symbol size must be positive, got %d", symbolSize)
	}
	if repairPackets <= 0 {
		return nil, errors.Errorf("repair packet count must be positive, got %d", repairPackets)
	}
	return &reedSolomonCodec{
		symbolSize:    symbolSize,
		repairPackets: repairPackets,
	}, nil
}

func (c *reedSolomonCodec) sourceShards(dataLen int) int {
	return (dataLen + c.symbolSize - 1) / c.symbolSize
}

// Encode encodes data into source + repair packets of symbolSize bytes each.
// The last source shard is zero-padded; Decode trims the padding using the
// original data length.
func (c *reedSolomonCodec) Encode(data []byte) ([]*Packet, error) {
	if len(data) == 0 {
		return nil, errors.New("cannot encode an empty buffer")
	}

	sourceShards := c.sourceShards(len(data))
	enc, err := reedsolomon.New(sourceShards, c.repairPackets)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	shards := make([][]byte, sourceShards+c.repairPackets)
	for i := 0; i < sourceShards; i++ {
		shard := make([]byte, c.symbolSize)
		copy(shard, data[i*c.symbolSize:])
		shards[i] = shard
	}
	for i := sourceShards; i < len(shards); i++ {
		shards[i] = make([]byte, c.symbolSize)
	}

	err = enc.Encode(shards)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	packets := make([]*Packet, len(shards))
	for i, shard := range shards {
		packets[i] = &Packet{Index: i, Payload: shard}
	}
	return packets, nil
}

// Decode reconstructs the original data from the surviving packets.
func (c *reedSolomonCodec) Decode(packets []*Packet, dataLen int) ([]byte, error) {
	if dataLen <= 0 {
		return nil, errors.Errorf("data length must be positive, got %d", dataLen)
	}

	sourceShards := c.sourceShards(dataLen)
	totalShards := sourceShards + c.repairPackets
	enc, err := reedsolomon.New(sourceShards, c.repairPackets)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	shards := make([][]byte, totalShards)
	for _, packet := range packets {
		if packet.Index < 0 || packet.Index >= totalShards {
			return nil, errors.Errorf("packet index %d out of range [0, %d)",
				packet.Index, totalShards)
		}
		if len(packet.Payload) != c.symbolSize {
			return nil, errors.Errorf("packet %d payload is %d bytes, want %d",
				packet.Index, len(packet.Payload), c.symbolSize)
		}
		shards[packet.Index] = packet.Payload
	}

	err = enc.Reconstruct(shards)
	if err != nil {
		if errors.Cause(err) == reedsolomon.ErrTooFewShards {
			return nil, errors.Wrapf(ErrDecodeFailed, "%d of %d packets survived",
				len(packets), totalShards)
		}
		return nil, errors.WithStack(err)
	}

	buf := &bytes.Buffer{}
	err = enc.Join(buf, shards, dataLen)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return buf.Bytes(), nil
}
