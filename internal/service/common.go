package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/nayamama/hr-project/internal/apperror"
)

// requireAdmin is the first check of every operation; nothing touches the
// store when it fails.
func requireAdmin(actor Actor) error {
	if !actor.IsAdmin {
		return apperror.New(apperror.CodePermission, "administrator capability required")
	}
	return nil
}

func normalizeRequiredString(raw string, field string) (string, error) {
	value := strings.TrimSpace(raw)
	length := utf8.RuneCountInString(value)
	if length < 1 || length > 200 {
		return "", apperror.New(apperror.CodeValidation, fmt.Sprintf("%s length must be in range 1..200", field))
	}
	return value, nil
}

// ParseDeleteAction maps a raw action parameter onto the closed protocol
// state set. Unknown values are rejected, not ignored.
func ParseDeleteAction(raw string) (DeleteAction, error) {
	switch DeleteAction(strings.TrimSpace(strings.ToLower(raw))) {
	case DeleteActionRequest:
		return DeleteActionRequest, nil
	case DeleteActionConfirm:
		return DeleteActionConfirm, nil
	}
	return "", apperror.New(apperror.CodeInvalidArgument, "action must be one of: request, confirm")
}
