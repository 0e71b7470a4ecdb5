package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/manav03panchal/ctt/internal/errors"
)

// Top-level snapshot fields, in document order.
const (
	FieldCompanies = "entities"
	FieldTimeLog   = "elapsedTimeMap"
	FieldComments  = "notes"
)

var requiredFields = []string{FieldCompanies, FieldTimeLog, FieldComments}

// Encode renders the snapshot as an indented JSON document.
// Nil collections are written as empty ones so the result always parses back.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.MarshalIndent(s.Clone(), "", "  ")
}

// ParseSnapshot decodes a snapshot document. Every top-level field must be
// present and non-null, and company and note ids must be unique; otherwise a
// FormatError is returned.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewInvalidJSONError(err)
	}

	for _, field := range requiredFields {
		msg, ok := raw[field]
		if !ok || bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
			return nil, errors.NewMissingFieldError(field)
		}
	}

	snap := &Snapshot{Key: KeySnapshot}
	if err := json.Unmarshal(raw[FieldCompanies], &snap.Companies); err != nil {
		return nil, shapeError(FieldCompanies, err)
	}
	if err := json.Unmarshal(raw[FieldTimeLog], &snap.TimeLog); err != nil {
		return nil, shapeError(FieldTimeLog, err)
	}
	if err := json.Unmarshal(raw[FieldComments], &snap.Comments); err != nil {
		return nil, shapeError(FieldComments, err)
	}

	companyIDs := make(map[int64]struct{}, len(snap.Companies))
	for _, c := range snap.Companies {
		if _, dup := companyIDs[c.ID]; dup {
			return nil, &errors.FormatError{
				Reason: fmt.Sprintf("duplicate company id %d", c.ID),
			}
		}
		companyIDs[c.ID] = struct{}{}
	}

	commentIDs := make(map[int64]struct{}, len(snap.Comments))
	for _, c := range snap.Comments {
		if _, dup := commentIDs[c.ID]; dup {
			return nil, &errors.FormatError{
				Reason: fmt.Sprintf("duplicate note id %d", c.ID),
			}
		}
		commentIDs[c.ID] = struct{}{}
	}

	for id, secs := range snap.TimeLog {
		if secs < 0 {
			return nil, &errors.FormatError{
				Reason: fmt.Sprintf("negative elapsed time for company %d", id),
			}
		}
	}

	return snap, nil
}

func shapeError(field string, cause error) *errors.FormatError {
	return &errors.FormatError{
		Reason: fmt.Sprintf("%q does not have the expected structure", field),
		Cause:  cause,
	}
}
