package model

// Selection tracks the at-most-one company currently accruing time.
// It is never persisted; a fresh session always starts paused.
type Selection struct {
	CompanyID  int64
	Active     bool
	PreviousID int64
}

// IsTracking returns true if a company is selected.
func (s *Selection) IsTracking() bool {
	return s.Active
}

// Is reports whether id is the selected company.
func (s *Selection) Is(id int64) bool {
	return s.Active && s.CompanyID == id
}

// SetActive selects id and remembers the previous selection.
func (s *Selection) SetActive(id int64) {
	if s.Active {
		s.PreviousID = s.CompanyID
	}
	s.CompanyID = id
	s.Active = true
}

// ClearActive clears the selection and saves it as previous.
func (s *Selection) ClearActive() {
	if s.Active {
		s.PreviousID = s.CompanyID
	}
	s.CompanyID = 0
	s.Active = false
}
