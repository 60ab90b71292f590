package envelope_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meshkit/geocore-go/pkg/geocore"
	"github.com/meshkit/geocore-go/pkg/geocore/envelope"
)

func samplePayload() []byte {
	// A real encoded buffer with enough repetition for the compressors to
	// bite on.
	vals := make([]float64, 256)
	for i := range vals {
		vals[i] = float64(i % 8)
	}
	return geocore.EncodeRealList(vals)
}

func TestSealOpenRoundTrip(t *testing.T) {
	payload := samplePayload()
	for _, c := range []envelope.Compression{envelope.None, envelope.LZ4, envelope.Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			sealed, err := envelope.Seal(payload, c)
			require.NoError(t, err)

			got, err := envelope.Open(sealed)
			require.NoError(t, err)
			assert.Equal(t, payload, got)

			// The opened payload is still a decodable buffer.
			vals, err := geocore.DecodeRealList(got)
			require.NoError(t, err)
			assert.Len(t, vals, 256)
		})
	}
}

func TestOpenRejectsForeignData(t *testing.T) {
	_, err := envelope.Open([]byte("not an envelope at all, sorry"))
	assert.ErrorIs(t, err, envelope.ErrBadMagic)

	_, err = envelope.Open(nil)
	assert.ErrorIs(t, err, envelope.ErrBadMagic)

	_, err = envelope.Open([]byte{'G', 'E', 'O'})
	assert.ErrorIs(t, err, envelope.ErrBadMagic)
}

func TestOpenRejectsUnknownVersion(t *testing.T) {
	sealed, err := envelope.Seal(samplePayload(), envelope.None)
	require.NoError(t, err)
	sealed[4] = 99

	_, err = envelope.Open(sealed)
	assert.ErrorIs(t, err, envelope.ErrVersion)
}

func TestOpenDetectsCorruption(t *testing.T) {
	for _, c := range []envelope.Compression{envelope.None, envelope.LZ4} {
		t.Run(c.String(), func(t *testing.T) {
			sealed, err := envelope.Seal(samplePayload(), c)
			require.NoError(t, err)
			sealed[len(sealed)-1] ^= 0xff

			_, err = envelope.Open(sealed)
			assert.Error(t, err)
		})
	}
}

func TestLZ4IncompressibleFallback(t *testing.T) {
	// A short high-entropy payload that LZ4 cannot shrink; it must be stored
	// raw and still round-trip.
	payload := []byte{0x01, 0xfe, 0x42, 0x99, 0x13, 0x37, 0xab, 0xcd}
	sealed, err := envelope.Seal(payload, envelope.LZ4)
	require.NoError(t, err)
	require.True(t, bytes.HasSuffix(sealed, payload), "incompressible body must be stored verbatim")

	got, err := envelope.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestSealedBodyIsSmallerWhenCompressible(t *testing.T) {
	payload := samplePayload()
	plain, err := envelope.Seal(payload, envelope.None)
	require.NoError(t, err)
	zst, err := envelope.Seal(payload, envelope.Zstd)
	require.NoError(t, err)
	assert.Less(t, len(zst), len(plain))
}

func TestOpenedPayloadDoesNotAliasInput(t *testing.T) {
	payload := samplePayload()
	sealed, err := envelope.Seal(payload, envelope.None)
	require.NoError(t, err)

	got, err := envelope.Open(sealed)
	require.NoError(t, err)
	sealed[len(sealed)-1] ^= 0xff
	assert.Equal(t, payload, got, "opened payload must be an independent copy")
}
