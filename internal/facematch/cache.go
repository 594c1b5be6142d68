package facematch

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver
)

// Cache is a local SQLite store of face descriptors keyed by visitor and
// photo content hash, so the external model only runs again when a visitor's
// stored photo changes.
type Cache struct {
	db   *sql.DB
	path string
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS descriptors (
	visitor_id  TEXT PRIMARY KEY,
	photo_hash  TEXT NOT NULL,
	descriptor  BLOB NOT NULL,
	updated_at  TIMESTAMP NOT NULL
);`

// OpenCache opens (or creates) the descriptor cache under dataDir. If
// dataDir is empty, defaults to ~/.concierge/data.
func OpenCache(dataDir string) (*Cache, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".concierge", "data")
	}
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "descriptors.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening descriptor cache: %w", err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing descriptor cache: %w", err)
	}

	return &Cache{db: db, path: dbPath}, nil
}

// Get returns the cached descriptor for a visitor if it was derived from the
// photo identified by photoHash. A stale entry (photo changed) is a miss.
func (c *Cache) Get(ctx context.Context, visitorID uuid.UUID, photoHash string) (Descriptor, bool, error) {
	var storedHash string
	var blob []byte
	err := c.db.QueryRowContext(ctx,
		`SELECT photo_hash, descriptor FROM descriptors WHERE visitor_id = ?`,
		visitorID.String()).Scan(&storedHash, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("querying descriptor cache: %w", err)
	}
	if storedHash != photoHash {
		return nil, false, nil
	}
	return DecodeDescriptor(blob), true, nil
}

// Put stores a freshly extracted descriptor, replacing any previous entry
// for the visitor.
func (c *Cache) Put(ctx context.Context, visitorID uuid.UUID, photoHash string, d Descriptor) error {
	if len(d) == 0 {
		return errors.New("empty descriptor")
	}
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO descriptors (visitor_id, photo_hash, descriptor, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(visitor_id) DO UPDATE SET
			photo_hash = excluded.photo_hash,
			descriptor = excluded.descriptor,
			updated_at = excluded.updated_at`,
		visitorID.String(), photoHash, EncodeDescriptor(d), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("storing descriptor: %w", err)
	}
	return nil
}

// Invalidate drops the cached descriptor for a visitor, e.g. after the
// enrollment photo is replaced.
func (c *Cache) Invalidate(ctx context.Context, visitorID uuid.UUID) error {
	_, err := c.db.ExecContext(ctx,
		`DELETE FROM descriptors WHERE visitor_id = ?`, visitorID.String())
	if err != nil {
		return fmt.Errorf("invalidating descriptor: %w", err)
	}
	return nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// HashFile returns the SHA-256 hex digest of a file's contents, used as the
// photo version key.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
