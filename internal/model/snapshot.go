package model

import "time"

// TimeLog maps a company id to its accumulated seconds.
type TimeLog map[int64]int64

// Seconds returns the accumulated seconds for id, zero if it was never active.
func (l TimeLog) Seconds(id int64) int64 {
	return l[id]
}

// Elapsed returns the accumulated time for id as a duration.
func (l TimeLog) Elapsed(id int64) time.Duration {
	return time.Duration(l[id]) * time.Second
}

// Clone returns an independent copy of the log.
func (l TimeLog) Clone() TimeLog {
	out := make(TimeLog, len(l))
	for id, secs := range l {
		out[id] = secs
	}
	return out
}

// Snapshot is the complete persisted and exported tracker state.
type Snapshot struct {
	Key       string    `json:"-"`
	Companies []Company `json:"entities"`
	TimeLog   TimeLog   `json:"elapsedTimeMap"`
	Comments  []Comment `json:"notes"`
}

// SetKey sets the database key for this snapshot.
func (s *Snapshot) SetKey(key string) {
	s.Key = key
}

// GetKey returns the database key for this snapshot.
func (s *Snapshot) GetKey() string {
	return s.Key
}

// NewSnapshot creates a snapshot keyed for storage.
func NewSnapshot(companies []Company, timeLog TimeLog, comments []Comment) *Snapshot {
	return &Snapshot{
		Key:       KeySnapshot,
		Companies: companies,
		TimeLog:   timeLog,
		Comments:  comments,
	}
}

// Clone returns a deep copy of the snapshot.
func (s *Snapshot) Clone() *Snapshot {
	companies := make([]Company, len(s.Companies))
	for i, c := range s.Companies {
		if c.LastUsed != nil {
			lastUsed := *c.LastUsed
			c.LastUsed = &lastUsed
		}
		companies[i] = c
	}

	comments := make([]Comment, len(s.Comments))
	copy(comments, s.Comments)

	timeLog := s.TimeLog.Clone()
	if s.TimeLog == nil {
		timeLog = TimeLog{}
	}

	return &Snapshot{
		Key:       s.Key,
		Companies: companies,
		TimeLog:   timeLog,
		Comments:  comments,
	}
}
