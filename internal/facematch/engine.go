package facematch

import (
	"context"
	"encoding/json"
	"log/slog"
)

// Mode says whether the external embedding model loaded for this session.
type Mode string

const (
	// ModeFull means the detector and embedder answered the startup probe.
	ModeFull Mode = "FULL"
	// ModeManual means the model is unavailable; every recognition attempt
	// routes to manual selection until Reload succeeds.
	ModeManual Mode = "MANUAL"
)

type Config struct {
	EmbedderCmd   string  // binary name or absolute path; if empty -> "face-embedder"
	ModelDir      string  // model weights directory passed to the embedder
	Threshold     float64 // max distance accepted as a match, default 0.6
	DescriptorDim int     // expected descriptor length, default 128
}

// Engine wraps the external face model runtime. The capability mode is fixed
// at construction (or by an explicit Reload); it is never flipped implicitly
// mid-session.
type Engine struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
	mode   Mode
}

func NewEngine(ctx context.Context, cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.EmbedderCmd == "" {
		cfg.EmbedderCmd = "face-embedder"
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 0.6
	}
	if cfg.DescriptorDim <= 0 {
		cfg.DescriptorDim = DescriptorDim
	}
	e := &Engine{cfg: cfg, runner: execRunner{}, logger: logger}
	e.mode = e.probe(ctx)
	return e
}

func (e *Engine) Mode() Mode { return e.mode }

func (e *Engine) Threshold() float64 { return e.cfg.Threshold }

// Reload re-probes the model runtime, e.g. after the operator installs the
// model weights. Returns the resulting mode.
func (e *Engine) Reload(ctx context.Context) Mode {
	e.mode = e.probe(ctx)
	return e.mode
}

func (e *Engine) probe(ctx context.Context) Mode {
	args := []string{"probe"}
	if e.cfg.ModelDir != "" {
		args = append(args, "--models", e.cfg.ModelDir)
	}
	if _, errb, err := e.runner.Run(ctx, e.cfg.EmbedderCmd, args...); err != nil {
		e.logger.Warn("face model unavailable, manual selection only",
			"cmd", e.cfg.EmbedderCmd, "error", err, "stderr", truncate(string(errb), 1<<10))
		return ModeManual
	}
	e.logger.Info("face model loaded", "cmd", e.cfg.EmbedderCmd, "threshold", e.cfg.Threshold)
	return ModeFull
}

// DetectFace reports whether a face is present in the image. Detection is a
// hint, not a gate: when the detector is unavailable or fails it answers
// true so the flow can continue toward manual selection.
func (e *Engine) DetectFace(ctx context.Context, imagePath string) bool {
	if e.mode == ModeManual {
		return true
	}
	out, _, err := e.runner.Run(ctx, e.cfg.EmbedderCmd, e.detectArgs(imagePath)...)
	if err != nil {
		return true
	}
	var payload struct {
		Faces int `json:"faces"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		e.logger.Warn("unreadable detector output", "error", err)
		return true
	}
	return payload.Faces > 0
}

// ExtractDescriptor returns nil (not an error) when the model is unavailable
// or no face is found; the caller falls back to manual identification. The
// only error returned is context cancellation.
func (e *Engine) ExtractDescriptor(ctx context.Context, imagePath string) (Descriptor, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.mode == ModeManual {
		return nil, nil
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.EmbedderCmd, e.embedArgs(imagePath)...)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		e.logger.Warn("descriptor extraction failed",
			"image", imagePath, "error", err, "stderr", truncate(string(errb), 1<<10))
		return nil, nil
	}

	var payload struct {
		Descriptor []float32 `json:"descriptor"`
	}
	if err := json.Unmarshal(out, &payload); err != nil {
		e.logger.Warn("unreadable embedder output", "image", imagePath, "error", err)
		return nil, nil
	}
	if len(payload.Descriptor) == 0 {
		return nil, nil
	}
	if len(payload.Descriptor) != e.cfg.DescriptorDim {
		e.logger.Warn("unexpected descriptor length",
			"image", imagePath, "got", len(payload.Descriptor), "want", e.cfg.DescriptorDim)
		return nil, nil
	}
	return Descriptor(payload.Descriptor), nil
}

func (e *Engine) detectArgs(imagePath string) []string {
	args := []string{"detect"}
	if e.cfg.ModelDir != "" {
		args = append(args, "--models", e.cfg.ModelDir)
	}
	return append(args, imagePath)
}

func (e *Engine) embedArgs(imagePath string) []string {
	args := []string{"embed"}
	if e.cfg.ModelDir != "" {
		args = append(args, "--models", e.cfg.ModelDir)
	}
	return append(args, imagePath)
}
