// Package envelope wraps encoded geocore buffers in a small versioned,
// checksummed container for use outside a single process: disk caches, mesh
// pipelines, IPC. The raw codec is a matched encoder/decoder pair with no
// self-identification, so any buffer that leaves the process and may come
// back under a different binding version travels inside an envelope. The
// native boundary itself never sees envelopes; dispatch always speaks raw
// buffers.
package envelope

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the body codec.
type Compression uint8

const (
	None Compression = iota
	LZ4
	Zstd
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case LZ4:
		return "lz4"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

const (
	// Version is the current envelope format version.
	Version = 1

	headerSize = 18 // magic(4) + version(1) + compression(1) + hash(8) + rawLen(4)
)

var magic = [4]byte{'G', 'E', 'O', 'B'}

var (
	// ErrBadMagic reports data that is not an envelope.
	ErrBadMagic = errors.New("envelope: bad magic")
	// ErrVersion reports an envelope written by an incompatible format
	// version.
	ErrVersion = errors.New("envelope: unsupported version")
	// ErrChecksum reports payload corruption.
	ErrChecksum = errors.New("envelope: checksum mismatch")
)

// Seal wraps a raw encoded buffer. The checksum always covers the
// uncompressed payload.
func Seal(payload []byte, c Compression) ([]byte, error) {
	body, err := compress(payload, c)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerSize+len(body))
	out = append(out, magic[:]...)
	out = append(out, Version, byte(c))
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(payload))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, body...), nil
}

// Open unwraps an envelope, returning the raw encoded buffer. It rejects
// foreign data, unknown versions, and corrupted payloads.
func Open(data []byte) ([]byte, error) {
	if len(data) < headerSize || [4]byte(data[:4]) != magic {
		return nil, ErrBadMagic
	}
	if data[4] != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, data[4])
	}
	c := Compression(data[5])
	sum := binary.LittleEndian.Uint64(data[6:])
	rawLen := int(binary.LittleEndian.Uint32(data[14:]))

	payload, err := decompress(data[headerSize:], c, rawLen)
	if err != nil {
		return nil, err
	}
	if xxhash.Sum64(payload) != sum {
		return nil, ErrChecksum
	}
	return payload, nil
}

func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case None:
		return payload, nil
	case LZ4:
		dst := make([]byte, lz4.CompressBlockBound(len(payload)))
		var compressor lz4.Compressor
		n, err := compressor.CompressBlock(payload, dst)
		if err != nil {
			return nil, fmt.Errorf("envelope: lz4 compress: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible: store the raw bytes. A compressed body is
			// always shorter than rawLen, so open disambiguates by length.
			return payload, nil
		}
		return dst[:n], nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("envelope: zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil
	default:
		return nil, fmt.Errorf("envelope: unknown compression %d", c)
	}
}

func decompress(body []byte, c Compression, rawLen int) ([]byte, error) {
	switch c {
	case None:
		out := make([]byte, len(body))
		copy(out, body)
		return out, nil
	case LZ4:
		if len(body) == rawLen {
			// Stored uncompressed by the incompressible fallback.
			out := make([]byte, len(body))
			copy(out, body)
			return out, nil
		}
		out := make([]byte, rawLen)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("envelope: lz4 decompress: %w", err)
		}
		return out[:n], nil
	case Zstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("envelope: zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(body, make([]byte, 0, rawLen))
		if err != nil {
			return nil, fmt.Errorf("envelope: zstd decompress: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("envelope: unknown compression %d", c)
	}
}
