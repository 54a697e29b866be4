package httpapi

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nayamama/hr-project/internal/models"
	"github.com/nayamama/hr-project/internal/service"
)

// parseDecimal treats an absent value as zero; money and rate fields all
// default that way.
func parseDecimal(raw string, field string) (decimal.Decimal, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, errors.New(field + " must be a decimal number")
	}
	return parsed, nil
}

func editRequestToInput(req editAnchorRequest) (service.EditAnchorInput, error) {
	entryTime, err := parseDate(req.EntryTime, "entry_time")
	if err != nil {
		return service.EditAnchorInput{}, err
	}
	basicSalary, err := parseDecimal(req.BasicSalary, "basic_salary")
	if err != nil {
		return service.EditAnchorInput{}, err
	}
	percentage, err := parseDecimal(req.Percentage, "percentage")
	if err != nil {
		return service.EditAnchorInput{}, err
	}
	liveTime, err := parseDecimal(req.LiveTime, "live_time")
	if err != nil {
		return service.EditAnchorInput{}, err
	}
	totalPaid, err := parseDecimal(req.TotalPaid, "total_paid")
	if err != nil {
		return service.EditAnchorInput{}, err
	}
	ownedSalary, err := parseDecimal(req.OwnedSalary, "owned_salary")
	if err != nil {
		return service.EditAnchorInput{}, err
	}

	return service.EditAnchorInput{
		Name:             req.Name,
		EntryTime:        entryTime,
		Address:          req.Address,
		MomoNumber:       req.MomoNumber,
		MobileNumber:     req.MobileNumber,
		IDNumber:         req.IDNumber,
		BasicSalaryOrNot: req.BasicSalaryOrNot,
		BasicSalary:      basicSalary,
		Percentage:       percentage,
		LiveTime:         liveTime,
		LiveSession:      models.LiveSession(req.LiveSession),
		AceAnchorOrNot:   req.AceAnchorOrNot,
		Agent:            req.Agent,
		TotalPaid:        totalPaid,
		OwnedSalary:      ownedSalary,
	}, nil
}
