package facematch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	a := Descriptor{1, 2, 3}
	b := Descriptor{4, 6, 3}

	assert.Equal(t, 0.0, Distance(a, a))
	assert.Equal(t, Distance(a, b), Distance(b, a))
	assert.InDelta(t, 5.0, Distance(a, b), 1e-9)
	assert.GreaterOrEqual(t, Distance(a, b), 0.0)
}

func TestDistance_AbsentSideIsInfinite(t *testing.T) {
	a := Descriptor{1, 2, 3}

	assert.True(t, math.IsInf(Distance(nil, a), 1))
	assert.True(t, math.IsInf(Distance(a, nil), 1))
	assert.True(t, math.IsInf(Distance(nil, nil), 1))
	assert.True(t, math.IsInf(Distance(a, Descriptor{1, 2}), 1))
}

func TestDescriptorCodec_RoundTrip(t *testing.T) {
	d := make(Descriptor, DescriptorDim)
	for i := range d {
		d[i] = float32(i) * 0.25
	}

	decoded := DecodeDescriptor(EncodeDescriptor(d))
	require.Len(t, decoded, DescriptorDim)
	assert.Equal(t, d, decoded)
}

func TestDecodeDescriptor_Empty(t *testing.T) {
	assert.Nil(t, DecodeDescriptor(nil))
	assert.Nil(t, DecodeDescriptor([]byte{}))
}
