package facematch

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

// Enrollment pairs an enrolled person with their face descriptor.
type Enrollment struct {
	PersonID   uuid.UUID
	Descriptor Descriptor
}

// MatchResult is a positive identification: the gallery entry whose
// descriptor sits strictly under the distance threshold.
type MatchResult struct {
	PersonID   uuid.UUID
	Distance   float64
	Confidence float64
}

// FindBestMatch scans the gallery sequentially and keeps the minimum
// distance to the captured descriptor. A result is returned only when that
// minimum is strictly less than threshold; confidence is 1 - distance/threshold.
// Entries without a descriptor are silently excluded. The gallery is scanned
// in person-ID order so equal distances resolve deterministically.
// Cancelling ctx stops the scan and discards any partial result.
func FindBestMatch(ctx context.Context, captured Descriptor, gallery []Enrollment, threshold float64) (*MatchResult, error) {
	if len(captured) == 0 || threshold <= 0 {
		return nil, nil
	}

	ordered := make([]Enrollment, len(gallery))
	copy(ordered, gallery)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].PersonID.String() < ordered[j].PersonID.String()
	})

	var best *MatchResult
	for _, e := range ordered {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(e.Descriptor) == 0 {
			continue
		}
		d := Distance(captured, e.Descriptor)
		if d >= threshold {
			continue
		}
		if best == nil || d < best.Distance {
			best = &MatchResult{
				PersonID:   e.PersonID,
				Distance:   d,
				Confidence: 1 - d/threshold,
			}
		}
	}
	return best, nil
}
