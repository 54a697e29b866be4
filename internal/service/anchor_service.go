package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nayamama/hr-project/internal/apperror"
	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/storage"
	"github.com/nayamama/hr-project/internal/store"
)

var percentageCeiling = decimal.NewFromInt(100)

type AnchorService struct {
	anchors     store.Anchors
	attachments storage.AttachmentStore
}

func NewAnchorService(anchors store.Anchors, attachments storage.AttachmentStore) *AnchorService {
	return &AnchorService{
		anchors:     anchors,
		attachments: attachments,
	}
}

func (s *AnchorService) List(ctx context.Context, actor Actor) ([]AnchorDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	anchors, err := s.anchors.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]AnchorDTO, 0, len(anchors))
	for _, anchor := range anchors {
		dtos = append(dtos, anchorToDTO(anchor))
	}
	return dtos, nil
}

// CreateSalaried is the fixed-salary creation path. The commission field
// stays zero; only the fields legal for this mode are accepted.
func (s *AnchorService) CreateSalaried(ctx context.Context, input CreateSalariedAnchorInput, actor Actor) (AnchorDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return AnchorDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return AnchorDTO{}, err
	}
	if input.BasicSalary.IsNegative() {
		return AnchorDTO{}, apperror.New(apperror.CodeValidation, "basic_salary must not be negative")
	}

	anchor := models.Anchor{
		Name:             name,
		EntryTime:        input.EntryTime,
		BasicSalaryOrNot: true,
		BasicSalary:      input.BasicSalary,
	}
	if err := s.anchors.Create(ctx, &anchor); err != nil {
		return AnchorDTO{}, err
	}
	return anchorToDTO(anchor), nil
}

// CreateCommission is the commission creation path. The salary field stays
// zero.
func (s *AnchorService) CreateCommission(ctx context.Context, input CreateCommissionAnchorInput, actor Actor) (AnchorDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return AnchorDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return AnchorDTO{}, err
	}
	if input.Percentage.IsNegative() || input.Percentage.GreaterThan(percentageCeiling) {
		return AnchorDTO{}, apperror.New(apperror.CodeValidation, "percentage must be in range 0..100")
	}

	anchor := models.Anchor{
		Name:             name,
		EntryTime:        input.EntryTime,
		BasicSalaryOrNot: false,
		Percentage:       input.Percentage,
	}
	if err := s.anchors.Create(ctx, &anchor); err != nil {
		return AnchorDTO{}, err
	}
	return anchorToDTO(anchor), nil
}

// Edit overwrites every field with the submitted value. It does not
// re-validate mode-appropriate field suppression: the edit path is allowed
// to switch compensation modes.
func (s *AnchorService) Edit(ctx context.Context, anchorID uint, input EditAnchorInput, actor Actor) (AnchorDTO, error) {
	if err := requireAdmin(actor); err != nil {
		return AnchorDTO{}, err
	}

	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return AnchorDTO{}, err
	}
	if input.LiveSession != "" && !input.LiveSession.Valid() {
		return AnchorDTO{}, apperror.New(apperror.CodeValidation, "live_session must be one of: morning, afternoon, evening, night")
	}

	anchor, err := s.anchors.GetByID(ctx, anchorID)
	if err != nil {
		return AnchorDTO{}, err
	}

	anchor.Name = name
	anchor.EntryTime = input.EntryTime
	anchor.Address = input.Address
	anchor.MomoNumber = input.MomoNumber
	anchor.MobileNumber = input.MobileNumber
	anchor.IDNumber = input.IDNumber
	anchor.BasicSalaryOrNot = input.BasicSalaryOrNot
	anchor.BasicSalary = input.BasicSalary
	anchor.Percentage = input.Percentage
	anchor.LiveTime = input.LiveTime
	anchor.LiveSession = input.LiveSession
	anchor.AceAnchorOrNot = input.AceAnchorOrNot
	anchor.Agent = input.Agent
	anchor.TotalPaid = input.TotalPaid
	anchor.OwnedSalary = input.OwnedSalary

	if input.Photo != nil {
		reference, err := s.attachments.Store(ctx, anchor.ID, input.Photo.Filename, input.Photo.Content)
		if err != nil {
			return AnchorDTO{}, err
		}
		anchor.Photo = reference
	}

	if err := s.anchors.Update(ctx, &anchor); err != nil {
		return AnchorDTO{}, err
	}
	return anchorToDTO(anchor), nil
}

// RequestDelete is the preview phase of the two-phase protocol. It mutates
// nothing; the confirmation it returns lives for one round trip.
func (s *AnchorService) RequestDelete(ctx context.Context, anchorID uint, name string, actor Actor) (DeleteConfirmation, error) {
	if err := requireAdmin(actor); err != nil {
		return DeleteConfirmation{}, err
	}

	if _, err := s.anchors.GetByID(ctx, anchorID); err != nil {
		return DeleteConfirmation{}, err
	}

	return DeleteConfirmation{ID: anchorID, Name: name}, nil
}

// ConfirmDelete performs the deletion. Confirming twice fails the second
// time with a not-found error, which is the intended replay behavior.
func (s *AnchorService) ConfirmDelete(ctx context.Context, anchorID uint, actor Actor) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.anchors.GetByID(ctx, anchorID); err != nil {
		return err
	}
	return s.anchors.Delete(ctx, anchorID)
}

// SearchByName is an exact, case-sensitive lookup. No match is a normal
// empty result.
func (s *AnchorService) SearchByName(ctx context.Context, name string, actor Actor) (SearchResult, error) {
	if err := requireAdmin(actor); err != nil {
		return SearchResult{}, err
	}

	anchor, err := s.anchors.GetByName(ctx, name)
	if err != nil {
		if apperror.Is(err, apperror.CodeNotFound) {
			return SearchResult{Found: false}, nil
		}
		return SearchResult{}, err
	}

	dto := anchorToDTO(anchor)
	return SearchResult{Found: true, Anchor: &dto}, nil
}

func anchorToDTO(anchor models.Anchor) AnchorDTO {
	var entryTime *string
	if anchor.EntryTime != nil {
		formatted := anchor.EntryTime.Format("2006-01-02")
		entryTime = &formatted
	}

	return AnchorDTO{
		ID:               anchor.ID,
		Name:             anchor.Name,
		EntryTime:        entryTime,
		Address:          anchor.Address,
		MomoNumber:       anchor.MomoNumber,
		MobileNumber:     anchor.MobileNumber,
		IDNumber:         anchor.IDNumber,
		BasicSalaryOrNot: anchor.BasicSalaryOrNot,
		BasicSalary:      anchor.BasicSalary,
		Percentage:       anchor.Percentage,
		LiveTime:         anchor.LiveTime,
		LiveSession:      anchor.LiveSession,
		AceAnchorOrNot:   anchor.AceAnchorOrNot,
		Agent:            anchor.Agent,
		TotalPaid:        anchor.TotalPaid,
		OwnedSalary:      anchor.OwnedSalary,
		Photo:            anchor.Photo,
		CreatedAt:        anchor.CreatedAt,
	}
}
