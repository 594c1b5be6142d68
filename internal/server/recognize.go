package server

import (
	"context"
	"strings"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
	"github.com/portaria-digital/concierge/internal/common"
	"github.com/portaria-digital/concierge/internal/facematch"
)

// RecognizeFace matches a captured frame against the enrolled gallery. The
// response state tells the operator what to do next: MATCHED carries the
// identified visitor, MANUAL_SELECTION asks for a manual pick, SCANNING means
// no face was visible in the frame.
func (s *ConciergeServer) RecognizeFace(ctx context.Context, req *conciergev1.RecognizeFaceRequest) (*conciergev1.RecognizeFaceResponse, error) {
	photoPath := strings.TrimSpace(req.GetPhotoPath())
	if photoPath == "" {
		return nil, common.InvalidArgumentError("photo_path is required")
	}

	res, err := s.recognizer.Run(ctx, photoPath)
	if err != nil {
		s.logger.Error("recognition failed", "photo_path", photoPath, "error", err)
		return nil, common.InternalError("recognition failed")
	}

	resp := &conciergev1.RecognizeFaceResponse{State: string(res.Session.State())}
	if res.Session.State() == facematch.StateMatched {
		resp.VisitorId = res.Session.PersonID().String()
	}
	if res.Match != nil {
		resp.Distance = res.Match.Distance
		resp.Confidence = res.Match.Confidence
	}
	return resp, nil
}
