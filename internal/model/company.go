package model

import (
	"strings"
	"time"
)

// Company is a named thing the user tracks time against.
type Company struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	IsFavorite bool   `json:"isFavorite"`
	LastUsed   *int64 `json:"lastUsed"`
}

// NewCompany creates a non-favorite company last used at now.
func NewCompany(id int64, name string, now time.Time) Company {
	lastUsed := now.UnixMilli()
	return Company{
		ID:       id,
		Name:     name,
		LastUsed: &lastUsed,
	}
}

// Touch stamps LastUsed with t.
func (c *Company) Touch(t time.Time) {
	ms := t.UnixMilli()
	c.LastUsed = &ms
}

// HasBeenUsed returns true if the company was ever selected or created by the user.
func (c Company) HasBeenUsed() bool {
	return c.LastUsed != nil && *c.LastUsed != 0
}

// LastUsedTime returns LastUsed as a time, or the zero time if unset.
func (c Company) LastUsedTime() time.Time {
	if c.LastUsed == nil {
		return time.Time{}
	}
	return time.UnixMilli(*c.LastUsed)
}

// MatchesName reports whether query is a case-insensitive substring of the name.
func (c Company) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(c.Name), strings.ToLower(query))
}

// SeedCompanies returns the registry used when nothing has been stored yet.
func SeedCompanies() []Company {
	return []Company{
		{ID: 1, Name: "Google", IsFavorite: true},
		{ID: 2, Name: "Facebook", IsFavorite: true},
		{ID: 3, Name: "Amazon", IsFavorite: true},
		{ID: 4, Name: "Netflix", IsFavorite: true},
		{ID: 5, Name: "Apple", IsFavorite: true},
		{ID: 6, Name: "Microsoft"},
		{ID: 7, Name: "Tesla"},
	}
}
