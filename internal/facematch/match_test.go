package facematch

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enrollment(id byte, d Descriptor) Enrollment {
	var u uuid.UUID
	u[0] = id
	return Enrollment{PersonID: u, Descriptor: d}
}

func TestFindBestMatch_MinimumUnderThresholdWins(t *testing.T) {
	probe := Descriptor{0, 0}
	gallery := []Enrollment{
		enrollment(1, Descriptor{0.5, 0}), // distance 0.5
		enrollment(2, Descriptor{0.1, 0}), // distance 0.1
		enrollment(3, Descriptor{0.9, 0}), // distance 0.9, over threshold
	}

	res, err := FindBestMatch(context.Background(), probe, gallery, 0.6)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, gallery[1].PersonID, res.PersonID)
	assert.InDelta(t, 0.1, res.Distance, 1e-6)
	assert.InDelta(t, 1-0.1/0.6, res.Confidence, 1e-6)
	assert.Greater(t, res.Confidence, 0.0)
	assert.Less(t, res.Confidence, 1.0)
}

func TestFindBestMatch_AllOverThresholdIsNil(t *testing.T) {
	probe := Descriptor{0, 0}
	gallery := []Enrollment{
		enrollment(1, Descriptor{0.6, 0}), // exactly the threshold: not a match
		enrollment(2, Descriptor{3, 4}),
	}

	res, err := FindBestMatch(context.Background(), probe, gallery, 0.6)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestFindBestMatch_NilProbeOrEmptyGallery(t *testing.T) {
	res, err := FindBestMatch(context.Background(), nil, []Enrollment{enrollment(1, Descriptor{0})}, 0.6)
	require.NoError(t, err)
	assert.Nil(t, res)

	res, err = FindBestMatch(context.Background(), Descriptor{0}, nil, 0.6)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestFindBestMatch_SkipsMissingDescriptors(t *testing.T) {
	probe := Descriptor{0, 0}
	gallery := []Enrollment{
		enrollment(1, nil),
		enrollment(2, Descriptor{0.2, 0}),
	}

	res, err := FindBestMatch(context.Background(), probe, gallery, 0.6)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, gallery[1].PersonID, res.PersonID)
}

func TestFindBestMatch_TiesResolveByPersonID(t *testing.T) {
	probe := Descriptor{0, 0}
	d := Descriptor{0.3, 0}
	low, high := enrollment(1, d), enrollment(9, d)

	// Same distance either way the gallery is ordered: the smaller person ID wins.
	for _, gallery := range [][]Enrollment{{high, low}, {low, high}} {
		res, err := FindBestMatch(context.Background(), probe, gallery, 0.6)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, low.PersonID, res.PersonID)
	}
}

func TestFindBestMatch_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := FindBestMatch(ctx, Descriptor{0}, []Enrollment{enrollment(1, Descriptor{0})}, 0.6)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}
