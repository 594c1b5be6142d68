package facematch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner answers per-subcommand, recording invocations.
type stubRunner struct {
	outputs map[string][]byte
	errs    map[string]error
	calls   []string
}

func (s *stubRunner) Run(_ context.Context, _ string, args ...string) ([]byte, []byte, error) {
	sub := ""
	if len(args) > 0 {
		sub = args[0]
	}
	s.calls = append(s.calls, sub)
	return s.outputs[sub], nil, s.errs[sub]
}

func newTestEngine(t *testing.T, r *stubRunner) *Engine {
	t.Helper()
	e := &Engine{
		cfg:    Config{EmbedderCmd: "face-embedder", Threshold: 0.6, DescriptorDim: 4},
		runner: r,
		logger: slog.Default(),
	}
	e.mode = e.probe(context.Background())
	return e
}

func descriptorJSON(n int) []byte {
	b := []byte(`{"descriptor":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b = append(b, ',')
		}
		b = append(b, fmt.Sprintf("%d.5", i)...)
	}
	return append(b, `]}`...)
}

func TestEngine_ProbeFailurePinsManualMode(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"probe": errors.New("no model weights")}}
	e := newTestEngine(t, r)

	assert.Equal(t, ModeManual, e.Mode())

	// Manual mode never shells out again: detection degrades to true,
	// extraction to nil.
	assert.True(t, e.DetectFace(context.Background(), "face.jpg"))
	d, err := e.ExtractDescriptor(context.Background(), "face.jpg")
	require.NoError(t, err)
	assert.Nil(t, d)
	assert.Equal(t, []string{"probe"}, r.calls)
}

func TestEngine_ReloadRecovers(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"probe": errors.New("no model weights")}}
	e := newTestEngine(t, r)
	require.Equal(t, ModeManual, e.Mode())

	r.errs = nil
	assert.Equal(t, ModeFull, e.Reload(context.Background()))
}

func TestEngine_DetectFace(t *testing.T) {
	tests := []struct {
		name   string
		output []byte
		err    error
		want   bool
	}{
		{name: "face found", output: []byte(`{"faces":1}`), want: true},
		{name: "no face", output: []byte(`{"faces":0}`), want: false},
		{name: "detector crash degrades to true", err: errors.New("boom"), want: true},
		{name: "garbage output degrades to true", output: []byte("not json"), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubRunner{
				outputs: map[string][]byte{"detect": tt.output},
				errs:    map[string]error{"detect": tt.err},
			}
			e := newTestEngine(t, r)
			require.Equal(t, ModeFull, e.Mode())
			assert.Equal(t, tt.want, e.DetectFace(context.Background(), "face.jpg"))
		})
	}
}

func TestEngine_ExtractDescriptor(t *testing.T) {
	r := &stubRunner{outputs: map[string][]byte{"embed": descriptorJSON(4)}}
	e := newTestEngine(t, r)

	d, err := e.ExtractDescriptor(context.Background(), "face.jpg")
	require.NoError(t, err)
	require.Len(t, d, 4)
	assert.InDelta(t, 0.5, float64(d[0]), 1e-6)
}

func TestEngine_ExtractDescriptor_DegradesToNil(t *testing.T) {
	tests := []struct {
		name   string
		output []byte
		err    error
	}{
		{name: "embedder crash", err: errors.New("boom")},
		{name: "no face in image", output: []byte(`{"descriptor":[]}`)},
		{name: "garbage output", output: []byte("not json")},
		{name: "wrong dimension", output: descriptorJSON(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &stubRunner{
				outputs: map[string][]byte{"embed": tt.output},
				errs:    map[string]error{"embed": tt.err},
			}
			e := newTestEngine(t, r)

			d, err := e.ExtractDescriptor(context.Background(), "face.jpg")
			require.NoError(t, err)
			assert.Nil(t, d)
		})
	}
}

func TestEngine_ExtractDescriptor_CancelledContext(t *testing.T) {
	e := newTestEngine(t, &stubRunner{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.ExtractDescriptor(ctx, "face.jpg")
	assert.ErrorIs(t, err, context.Canceled)
}
