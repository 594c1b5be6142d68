package recognize

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portaria-digital/concierge/gen/ent"
	"github.com/portaria-digital/concierge/internal/facematch"
	"github.com/portaria-digital/concierge/internal/repository"
)

type stubVisitors struct {
	withPhoto []*ent.Visitor
}

func (s *stubVisitors) GetByID(context.Context, uuid.UUID) (*ent.Visitor, error) { return nil, nil }
func (s *stubVisitors) FindByTaxID(context.Context, string) (*ent.Visitor, error) {
	return nil, nil
}
func (s *stubVisitors) Create(context.Context, *repository.CreateVisitorRequest) (*ent.Visitor, error) {
	return nil, nil
}
func (s *stubVisitors) UpsertByTaxID(context.Context, *repository.CreateVisitorRequest) (*ent.Visitor, bool, error) {
	return nil, false, nil
}
func (s *stubVisitors) SetPhotoPath(context.Context, uuid.UUID, string) error { return nil }
func (s *stubVisitors) List(context.Context) ([]*ent.Visitor, error)          { return nil, nil }
func (s *stubVisitors) ListWithPhoto(context.Context) ([]*ent.Visitor, error) {
	return s.withPhoto, nil
}

type stubEngine struct {
	mode        facematch.Mode
	threshold   float64
	faceFound   bool
	descriptors map[string]facematch.Descriptor // by image path
	embedCalls  int
}

func (s *stubEngine) Mode() facematch.Mode { return s.mode }
func (s *stubEngine) Threshold() float64   { return s.threshold }
func (s *stubEngine) DetectFace(context.Context, string) bool {
	return s.faceFound
}
func (s *stubEngine) ExtractDescriptor(_ context.Context, imagePath string) (facematch.Descriptor, error) {
	s.embedCalls++
	return s.descriptors[imagePath], nil
}

type cacheEntry struct {
	hash string
	d    facematch.Descriptor
}

type stubCache struct {
	entries map[uuid.UUID]cacheEntry
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[uuid.UUID]cacheEntry{}}
}

func (c *stubCache) Get(_ context.Context, visitorID uuid.UUID, photoHash string) (facematch.Descriptor, bool, error) {
	e, ok := c.entries[visitorID]
	if !ok || e.hash != photoHash {
		return nil, false, nil
	}
	return e.d, true, nil
}

func (c *stubCache) Put(_ context.Context, visitorID uuid.UUID, photoHash string, d facematch.Descriptor) error {
	c.entries[visitorID] = cacheEntry{hash: photoHash, d: d}
	return nil
}

func writePhoto(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func enrolled(t *testing.T, dir, name string) *ent.Visitor {
	t.Helper()
	p := writePhoto(t, dir, name+".jpg", "photo-of-"+name)
	return &ent.Visitor{ID: uuid.New(), Name: name, PhotoPath: &p}
}

func TestRun_IdentifiesClosestVisitor(t *testing.T) {
	dir := t.TempDir()
	alice := enrolled(t, dir, "alice")
	bob := enrolled(t, dir, "bob")
	captured := writePhoto(t, dir, "captured.jpg", "frame")

	engine := &stubEngine{
		mode:      facematch.ModeFull,
		threshold: 0.6,
		faceFound: true,
		descriptors: map[string]facematch.Descriptor{
			captured:         {0, 0, 0, 0},
			*alice.PhotoPath: {0.3, 0, 0, 0},
			*bob.PhotoPath:   {1, 0, 0, 0},
		},
	}
	p := NewPipeline(slog.Default(), &stubVisitors{withPhoto: []*ent.Visitor{alice, bob}}, engine, nil)

	res, err := p.Run(context.Background(), captured)
	require.NoError(t, err)
	require.NotNil(t, res.Match)
	assert.Equal(t, facematch.StateMatched, res.Session.State())
	assert.Equal(t, alice.ID, res.Match.PersonID)
	assert.InDelta(t, 0.3, res.Match.Distance, 1e-6)
	assert.Equal(t, alice.ID, res.Session.PersonID())
}

func TestRun_NoFaceKeepsScanning(t *testing.T) {
	engine := &stubEngine{mode: facematch.ModeFull, threshold: 0.6, faceFound: false}
	p := NewPipeline(slog.Default(), &stubVisitors{}, engine, nil)

	res, err := p.Run(context.Background(), "frame.jpg")
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	assert.Equal(t, facematch.StateScanning, res.Session.State())
}

func TestRun_NoDescriptorFallsBackToManual(t *testing.T) {
	// manual mode: detection answers true, extraction yields nothing
	engine := &stubEngine{mode: facematch.ModeManual, threshold: 0.6, faceFound: true}
	p := NewPipeline(slog.Default(), &stubVisitors{}, engine, nil)

	res, err := p.Run(context.Background(), "frame.jpg")
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	assert.Equal(t, facematch.StateManualSelection, res.Session.State())

	require.NoError(t, res.Session.SelectManually(uuid.New()))
	assert.Equal(t, facematch.StateMatched, res.Session.State())
}

func TestRun_NobodyUnderThresholdFallsBack(t *testing.T) {
	dir := t.TempDir()
	alice := enrolled(t, dir, "alice")
	captured := writePhoto(t, dir, "captured.jpg", "frame")

	engine := &stubEngine{
		mode:      facematch.ModeFull,
		threshold: 0.6,
		faceFound: true,
		descriptors: map[string]facematch.Descriptor{
			captured:         {0, 0, 0, 0},
			*alice.PhotoPath: {2, 0, 0, 0},
		},
	}
	p := NewPipeline(slog.Default(), &stubVisitors{withPhoto: []*ent.Visitor{alice}}, engine, nil)

	res, err := p.Run(context.Background(), captured)
	require.NoError(t, err)
	assert.Nil(t, res.Match)
	assert.Equal(t, facematch.StateManualSelection, res.Session.State())
}

func TestGallery_SkipsPhotosWithoutFace(t *testing.T) {
	dir := t.TempDir()
	alice := enrolled(t, dir, "alice")
	blank := enrolled(t, dir, "blank")

	engine := &stubEngine{
		mode:      facematch.ModeFull,
		threshold: 0.6,
		descriptors: map[string]facematch.Descriptor{
			*alice.PhotoPath: {0.1, 0, 0, 0},
			// blank's photo yields no descriptor
		},
	}
	p := NewPipeline(slog.Default(), &stubVisitors{withPhoto: []*ent.Visitor{alice, blank}}, engine, nil)

	gallery, err := p.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, alice.ID, gallery[0].PersonID)
}

func TestGallery_SkipsUnreadablePhoto(t *testing.T) {
	missing := "/nonexistent/photo.jpg"
	ghost := &ent.Visitor{ID: uuid.New(), Name: "ghost", PhotoPath: &missing}

	engine := &stubEngine{mode: facematch.ModeFull, threshold: 0.6}
	p := NewPipeline(slog.Default(), &stubVisitors{withPhoto: []*ent.Visitor{ghost}}, engine, nil)

	gallery, err := p.Gallery(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gallery)
	assert.Zero(t, engine.embedCalls)
}

func TestGallery_UsesCacheUntilPhotoChanges(t *testing.T) {
	dir := t.TempDir()
	alice := enrolled(t, dir, "alice")

	engine := &stubEngine{
		mode:      facematch.ModeFull,
		threshold: 0.6,
		descriptors: map[string]facematch.Descriptor{
			*alice.PhotoPath: {0.1, 0, 0, 0},
		},
	}
	cache := newStubCache()
	p := NewPipeline(slog.Default(), &stubVisitors{withPhoto: []*ent.Visitor{alice}}, engine, cache)

	// first run embeds and caches
	gallery, err := p.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, 1, engine.embedCalls)

	// second run is served from the cache
	gallery, err = p.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, 1, engine.embedCalls)

	// photo replaced: hash changes, the model runs again
	require.NoError(t, os.WriteFile(*alice.PhotoPath, []byte("new-photo"), 0600))
	gallery, err = p.Gallery(context.Background())
	require.NoError(t, err)
	require.Len(t, gallery, 1)
	assert.Equal(t, 2, engine.embedCalls)
}
