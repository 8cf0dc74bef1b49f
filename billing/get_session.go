package billing

import (
	"context"

	"encore.dev/rlog"
)

//encore:api public path=/v1/sessions/:id method=GET
func (s *Service) GetSession(ctx context.Context, id string) (*SessionResponse, error) {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}

	result, err := s.business.GetSession(ctx, sessionID)
	if err != nil {
		rlog.Error("failed to get session", "error", err, "session_id", id)
		return nil, err
	}

	return &SessionResponse{
		Session: *result,
	}, nil
}
