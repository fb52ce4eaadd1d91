package service

import (
	"errors"
	"strings"
)

var (
	ErrNoSurveys       = errors.New("no surveys found")
	ErrStorageFailure  = errors.New("storage failure")
	ErrInvalidCompany  = errors.New("company name is required")
	ErrEmptyTranscript = errors.New("transcript is required")
	ErrExtraction      = errors.New("evaluation extraction failed")
)

// ValidateCompany rejects blank company names. The name is otherwise used
// verbatim, since rows are matched by exact equality.
func ValidateCompany(company string) error {
	if strings.TrimSpace(company) == "" {
		return ErrInvalidCompany
	}
	return nil
}
