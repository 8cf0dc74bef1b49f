package billing

import (
	"context"

	"encore.dev/rlog"

	"github.com/dugiahuy/session-billing/billing/model"
)

type ListChargesResponse struct {
	Charges []model.Charge `json:"charges"`
}

//encore:api public path=/v1/sessions/:id/charges method=GET
func (s *Service) ListCharges(ctx context.Context, id string) (*ListChargesResponse, error) {
	sessionID, err := parseSessionID(id)
	if err != nil {
		return nil, err
	}

	charges, err := s.business.ListCharges(ctx, sessionID)
	if err != nil {
		rlog.Error("failed to list charges", "error", err, "session_id", id)
		return nil, err
	}

	response := &ListChargesResponse{
		Charges: make([]model.Charge, len(charges)),
	}
	for i, charge := range charges {
		response.Charges[i] = *charge
	}

	return response, nil
}
