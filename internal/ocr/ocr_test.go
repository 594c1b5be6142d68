package ocr

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaria-digital/concierge/constants"
)

type stubRunner struct {
	stdout []byte
	stderr []byte
	err    error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	return s.stdout, s.stderr, s.err
}

func newTestRecognizer(r Runner) *Recognizer {
	rec := NewRecognizer(Config{}, slog.Default())
	rec.runner = r
	return rec
}

func TestRecognize_Image(t *testing.T) {
	r := &stubRunner{stdout: []byte("NOME E SOBRENOME\nMARIA DA SILVA\nCPF 987.654.321-00\n")}
	rec := newTestRecognizer(r)

	res, err := rec.Recognize(context.Background(), "doc.jpg")
	require.NoError(t, err)
	assert.Equal(t, constants.IMAGE, res.SourceType)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, "por", res.Language)
	assert.Contains(t, res.Text, "MARIA DA SILVA")
	assert.Greater(t, res.Confidence, float32(0))

	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"tesseract", "doc.jpg", "stdout", "-l", "por"}, r.calls[0])
}

func TestRecognize_TesseractFailurePropagates(t *testing.T) {
	r := &stubRunner{err: errors.New("engine crashed"), stderr: []byte("boom")}
	rec := newTestRecognizer(r)

	_, err := rec.Recognize(context.Background(), "doc.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tesseract")
}

func TestRecognize_UnsupportedExtension(t *testing.T) {
	rec := newTestRecognizer(&stubRunner{})

	_, err := rec.Recognize(context.Background(), "doc.gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestNormalize(t *testing.T) {
	in := "NOME  \r\nMARIA\n\n\n\nCPF ____ 123\x07"
	out := Normalize(in)

	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, "____")
	assert.NotContains(t, out, "\x07")
	assert.NotContains(t, out, "\n\n\n")
	// Line structure survives: the field extractor is line-anchored.
	assert.Equal(t, "NOME", strings.Split(out, "\n")[0])
}

func TestHeuristicConfidence(t *testing.T) {
	rich := "NASCIMENTO 15/07/1990 CPF 987.654.321-00 " + strings.Repeat("x", 120)
	poor := "zz"

	assert.Greater(t, heuristicConfidence(rich), heuristicConfidence(poor))
	assert.LessOrEqual(t, heuristicConfidence(rich), float32(1.0))
	assert.Equal(t, float32(0.2), heuristicConfidence(poor))
}
