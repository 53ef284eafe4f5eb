package records

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/linesmerrill/dmv-records-api/access"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/models"
)

var (
	driversLicenseStatuses = map[string]bool{
		models.DriversLicenseValid:     true,
		models.DriversLicenseSuspended: true,
		models.DriversLicenseExpired:   true,
	}
	firearmsLicenseStatuses = map[string]bool{
		models.FirearmsLicenseNone:      true,
		models.FirearmsLicenseSuspended: true,
		models.FirearmsLicenseOpenCarry: true,
		models.FirearmsLicenseConcealed: true,
	}
)

// CharacterInput is the writable part of a character
type CharacterInput struct {
	Name                  string `json:"name"`
	DateOfBirth           string `json:"date_of_birth"`
	Address               string `json:"address"`
	PhoneNumber           string `json:"phone_number"`
	Profession            string `json:"profession"`
	Gender                string `json:"gender"`
	Race                  string `json:"race"`
	HairColor             string `json:"hair_color"`
	EyeColor              string `json:"eye_color"`
	Height                string `json:"height"`
	Weight                string `json:"weight"`
	Backstory             string `json:"backstory"`
	DriversLicenseStatus  string `json:"drivers_license_status"`
	FirearmsLicenseStatus string `json:"firearms_license_status"`
}

func (in CharacterInput) validate() error {
	if err := requireFields(
		field("name", in.Name),
		field("date_of_birth", in.DateOfBirth),
		field("address", in.Address),
		field("profession", in.Profession),
		field("gender", in.Gender),
		field("race", in.Race),
	); err != nil {
		return err
	}
	if s := strings.TrimSpace(in.DriversLicenseStatus); s != "" && !driversLicenseStatuses[s] {
		return validationError("invalid drivers_license_status %q", s)
	}
	if s := strings.TrimSpace(in.FirearmsLicenseStatus); s != "" && !firearmsLicenseStatuses[s] {
		return validationError("invalid firearms_license_status %q", s)
	}
	return nil
}

// apply copies the input onto c. Blank status fields keep the current value.
func (in CharacterInput) apply(c *models.Character) {
	c.Name = strings.TrimSpace(in.Name)
	c.DateOfBirth = strings.TrimSpace(in.DateOfBirth)
	c.Address = strings.TrimSpace(in.Address)
	c.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	c.Profession = strings.TrimSpace(in.Profession)
	c.Gender = strings.TrimSpace(in.Gender)
	c.Race = strings.TrimSpace(in.Race)
	c.HairColor = strings.TrimSpace(in.HairColor)
	c.EyeColor = strings.TrimSpace(in.EyeColor)
	c.Height = strings.TrimSpace(in.Height)
	c.Weight = strings.TrimSpace(in.Weight)
	c.Backstory = in.Backstory
	c.DriversLicenseStatus = orDefault(in.DriversLicenseStatus, c.DriversLicenseStatus)
	c.FirearmsLicenseStatus = orDefault(in.FirearmsLicenseStatus, c.FirearmsLicenseStatus)
}

// CreateCharacter inserts a character owned by the caller and returns its id
func (s *Service) CreateCharacter(ctx context.Context, caps access.Capabilities, in CharacterInput) (int64, error) {
	if err := requireAuthenticated(caps); err != nil {
		return 0, err
	}
	if err := in.validate(); err != nil {
		return 0, err
	}

	now := s.now()
	c := &models.Character{
		UserID:                caps.UserID(),
		DriversLicenseStatus:  models.DriversLicenseValid,
		FirearmsLicenseStatus: models.FirearmsLicenseNone,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	in.apply(c)

	id, err := s.Characters.InsertOne(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("failed to create character: %w", err)
	}
	zap.S().Debugw("character created", "character_id", id, "user_id", c.UserID)
	return id, nil
}

// GetCharacter returns the character with every record attached to it.
// Owners without LEO or judge access only see Completed warrants.
func (s *Service) GetCharacter(ctx context.Context, caps access.Capabilities, id int64) (*models.CharacterDetail, error) {
	if err := requireAuthenticated(caps); err != nil {
		return nil, err
	}
	c, err := s.findCharacter(ctx, id)
	if err != nil {
		return nil, err
	}
	isOwner := caps.IsOwner(c.UserID)
	if !isOwner && !isLEOOrJudge(caps) {
		return nil, forbidden("not allowed to view this character")
	}

	warrantStatus := ""
	if !isLEOOrJudge(caps) {
		warrantStatus = models.WarrantStatusCompleted
	}

	detail := &models.CharacterDetail{
		Character:      c,
		IsOwner:        isOwner,
		HasLEOAccess:   caps.HasLEO(),
		HasJudgeAccess: caps.HasJudge(),
	}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.Vehicles.FindByCharacterID(gctx, id)
		detail.Vehicles = v
		return err
	})
	g.Go(func() error {
		ct, err := s.Citations.FindByCharacterID(gctx, id)
		detail.Citations = ct
		return err
	})
	g.Go(func() error {
		a, err := s.Arrests.FindByCharacterID(gctx, id)
		detail.Arrests = a
		return err
	})
	g.Go(func() error {
		w, err := s.Warrants.FindByCharacterID(gctx, id, warrantStatus)
		detail.Warrants = w
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load records for character %d: %w", id, err)
	}

	// empty sets encode as [] rather than null
	if detail.Vehicles == nil {
		detail.Vehicles = []models.Vehicle{}
	}
	if detail.Citations == nil {
		detail.Citations = []models.Citation{}
	}
	if detail.Arrests == nil {
		detail.Arrests = []models.Arrest{}
	}
	if detail.Warrants == nil {
		detail.Warrants = []models.Warrant{}
	}
	return detail, nil
}

// UpdateCharacter overwrites the mutable fields of a character. Only the
// owner or a judge may do so.
func (s *Service) UpdateCharacter(ctx context.Context, caps access.Capabilities, id int64, in CharacterInput) error {
	if err := requireAuthenticated(caps); err != nil {
		return err
	}
	c, err := s.findCharacter(ctx, id)
	if err != nil {
		return err
	}
	if !canEdit(caps, c.UserID) {
		return forbidden("not allowed to edit this character")
	}
	if err := in.validate(); err != nil {
		return err
	}

	in.apply(c)
	c.UpdatedAt = s.now()
	if err := s.Characters.UpdateOne(ctx, c); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return notFound("character not found", err)
		}
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

// ListMyCharacters returns the caller's characters, newest first
func (s *Service) ListMyCharacters(ctx context.Context, caps access.Capabilities) ([]models.Character, error) {
	if err := requireAuthenticated(caps); err != nil {
		return nil, err
	}
	characters, err := s.Characters.FindByUserID(ctx, caps.UserID())
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	if characters == nil {
		characters = []models.Character{}
	}
	return characters, nil
}

// Search finds characters by name or address. Queries shorter than
// MinSearchLength return no results without hitting the store.
func (s *Service) Search(ctx context.Context, caps access.Capabilities, query string) ([]models.CharacterSummary, error) {
	if err := requireAuthenticated(caps); err != nil {
		return nil, err
	}
	if !isLEOOrJudge(caps) {
		return nil, forbidden("LEO or judge access required")
	}
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinSearchLength {
		return []models.CharacterSummary{}, nil
	}
	results, err := s.Characters.Search(ctx, query, SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search characters: %w", err)
	}
	if results == nil {
		results = []models.CharacterSummary{}
	}
	return results, nil
}

func (s *Service) findCharacter(ctx context.Context, id int64) (*models.Character, error) {
	c, err := s.Characters.FindOne(ctx, id)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return nil, notFound("character not found", err)
		}
		return nil, fmt.Errorf("failed to get character %d: %w", id, err)
	}
	return c, nil
}
