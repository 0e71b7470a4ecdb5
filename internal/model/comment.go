package model

import "time"

// Comment is a free-text note attached to a company.
type Comment struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"companyId"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// NewComment creates a comment bound to companyID at now.
func NewComment(id, companyID int64, text string, now time.Time) Comment {
	return Comment{
		ID:        id,
		CompanyID: companyID,
		Text:      text,
		Timestamp: now.UnixMilli(),
	}
}

// Time returns the comment timestamp as a time.
func (c Comment) Time() time.Time {
	return time.UnixMilli(c.Timestamp)
}
