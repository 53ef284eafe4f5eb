package records

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/models"
)

// up to ten integer digits and two decimals, matching NUMERIC(12, 2)
var fineAmountPattern = regexp.MustCompile(`^\d{1,10}(\.\d{1,2})?$`)

// CitationInput is the body of a new citation
type CitationInput struct {
	Violation  string        `json:"violation"`
	FineAmount models.Amount `json:"fine_amount"`
	Notes      string        `json:"notes"`
}

func (in CitationInput) validate() error {
	if err := requireFields(
		field("violation", in.Violation),
		field("fine_amount", string(in.FineAmount)),
	); err != nil {
		return err
	}
	if !fineAmountPattern.MatchString(strings.TrimSpace(string(in.FineAmount))) {
		return validationError("fine_amount must be a non-negative amount with at most two decimals")
	}
	return nil
}

// ArrestInput is the body of a new arrest report
type ArrestInput struct {
	Charges  string `json:"charges"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (in ArrestInput) validate() error {
	return requireFields(
		field("charges", in.Charges),
		field("location", in.Location),
	)
}

// IssueCitation records a citation against a character with the caller as
// the issuer. Requires LEO or judge access.
func (s *Service) IssueCitation(ctx context.Context, caps access.Capabilities, characterID int64, in CitationInput) (int64, error) {
	if err := requireAuthenticated(caps); err != nil {
		return 0, err
	}
	if !isLEOOrJudge(caps) {
		return 0, forbidden("LEO or judge access required")
	}
	if err := in.validate(); err != nil {
		return 0, err
	}
	if _, err := s.findCharacter(ctx, characterID); err != nil {
		return 0, err
	}

	id, err := s.Citations.InsertOne(ctx, &models.Citation{
		CharacterID: characterID,
		Violation:   strings.TrimSpace(in.Violation),
		FineAmount:  strings.TrimSpace(string(in.FineAmount)),
		Notes:       in.Notes,
		IssuedBy:    caps.UserID(),
		CreatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to issue citation: %w", err)
	}
	zap.S().Infow("citation issued", "citation_id", id, "character_id", characterID, "issued_by", caps.UserID())
	return id, nil
}

// FileArrest records an arrest against a character with the caller as the
// arresting officer. Requires LEO or judge access.
func (s *Service) FileArrest(ctx context.Context, caps access.Capabilities, characterID int64, in ArrestInput) (int64, error) {
	if err := requireAuthenticated(caps); err != nil {
		return 0, err
	}
	if !isLEOOrJudge(caps) {
		return 0, forbidden("LEO or judge access required")
	}
	if err := in.validate(); err != nil {
		return 0, err
	}
	if _, err := s.findCharacter(ctx, characterID); err != nil {
		return 0, err
	}

	id, err := s.Arrests.InsertOne(ctx, &models.Arrest{
		CharacterID: characterID,
		Charges:     strings.TrimSpace(in.Charges),
		Location:    strings.TrimSpace(in.Location),
		Notes:       in.Notes,
		ArrestedBy:  caps.UserID(),
		CreatedAt:   s.now(),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to file arrest: %w", err)
	}
	zap.S().Infow("arrest filed", "arrest_id", id, "character_id", characterID, "arrested_by", caps.UserID())
	return id, nil
}
