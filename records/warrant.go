package records

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

// WarrantInput is the body of a new warrant
type WarrantInput struct {
	Charges string `json:"charges"`
	Reason  string `json:"reason"`
}

// IssueWarrant creates an Active warrant against a character. Requires
// judge access.
func (s *Service) IssueWarrant(ctx context.Context, caps access.Capabilities, characterID int64, in WarrantInput) (int64, error) {
	if err := requireAuthenticated(caps); err != nil {
		return 0, err
	}
	if !caps.HasJudge() {
		return 0, forbidden("judge access required")
	}
	if err := requireFields(field("charges", in.Charges), field("reason", in.Reason)); err != nil {
		return 0, err
	}
	if _, err := s.findCharacter(ctx, characterID); err != nil {
		return 0, err
	}

	id, err := s.Warrants.InsertOne(ctx, &models.Warrant{
		CharacterID: characterID,
		Charges:     strings.TrimSpace(in.Charges),
		Reason:      strings.TrimSpace(in.Reason),
		Status:      models.WarrantStatusActive,
		IssuedBy:    caps.UserID(),
		CreatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to issue warrant: %w", err)
	}
	zap.S().Infow("warrant issued", "warrant_id", id, "character_id", characterID, "issued_by", caps.UserID())
	return id, nil
}

// CompleteWarrant marks an Active warrant Completed by the caller. A warrant
// that is already Completed is left as it is and the call succeeds.
// Requires LEO or judge access.
func (s *Service) CompleteWarrant(ctx context.Context, caps access.Capabilities, warrantID int64) error {
	if err := requireAuthenticated(caps); err != nil {
		return err
	}
	if !isLEOOrJudge(caps) {
		return forbidden("LEO or judge access required")
	}
	w, err := s.Warrants.FindOne(ctx, warrantID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return notFound("warrant not found", err)
		}
		return fmt.Errorf("failed to get warrant %d: %w", warrantID, err)
	}
	if w.Status == models.WarrantStatusCompleted {
		zap.S().Debugw("warrant already completed", "warrant_id", warrantID)
		return nil
	}

	changed, err := s.Warrants.Complete(ctx, warrantID, caps.UserID(), s.now())
	if err != nil {
		return fmt.Errorf("failed to complete warrant: %w", err)
	}
	if changed {
		zap.S().Infow("warrant completed", "warrant_id", warrantID, "completed_by", caps.UserID())
	}
	return nil
}
