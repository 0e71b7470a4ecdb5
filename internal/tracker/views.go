package tracker

import (
	"sort"
	"strings"

	"github.com/manav03panchal/ctt/internal/model"
)

// Companies returns the whole registry in registry order.
func (t *Tracker) Companies() []model.Company {
	t.mu.Lock()
	defer t.mu.Unlock()
	return cloneAll(t.companies)
}

// Company returns the company with id.
func (t *Tracker) Company(id int64) (model.Company, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.findCompany(id)
	if i < 0 {
		return model.Company{}, false
	}
	return clone(t.companies[i]), true
}

// Favorites returns the first favorites in registry order.
func (t *Tracker) Favorites() []model.Company {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := []model.Company{}
	for _, c := range t.companies {
		if len(out) == t.favLimit {
			break
		}
		if c.IsFavorite {
			out = append(out, clone(c))
		}
	}
	return out
}

// Recents returns the most recently used non-favorites, newest first.
func (t *Tracker) Recents() []model.Company {
	t.mu.Lock()
	out := []model.Company{}
	for _, c := range t.companies {
		if !c.IsFavorite && c.HasBeenUsed() {
			out = append(out, clone(c))
		}
	}
	t.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].LastUsed > *out[j].LastUsed
	})
	if len(out) > t.recLimit {
		out = out[:t.recLimit]
	}
	return out
}

// Active returns the active company, if any.
func (t *Tracker) Active() (model.Company, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.selection.IsTracking() {
		return model.Company{}, false
	}
	i := t.findCompany(t.selection.CompanyID)
	if i < 0 {
		return model.Company{}, false
	}
	return clone(t.companies[i]), true
}

// Selection returns the current selection.
func (t *Tracker) Selection() model.Selection {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selection
}

// IsActive reports whether id is the active company.
func (t *Tracker) IsActive(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selection.Is(id)
}

// ActiveComments returns the notes of the active company, newest first.
func (t *Tracker) ActiveComments() []model.Comment {
	t.mu.Lock()
	if !t.selection.IsTracking() {
		t.mu.Unlock()
		return []model.Comment{}
	}
	id := t.selection.CompanyID
	t.mu.Unlock()

	return t.CommentsFor(id)
}

// CommentsFor returns the notes of companyID, newest first.
func (t *Tracker) CommentsFor(companyID int64) []model.Comment {
	t.mu.Lock()
	out := []model.Comment{}
	for _, c := range t.comments {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	t.mu.Unlock()

	sortNewestFirst(out)
	return out
}

// Comments returns every note, newest first.
func (t *Tracker) Comments() []model.Comment {
	t.mu.Lock()
	out := make([]model.Comment, len(t.comments))
	copy(out, t.comments)
	t.mu.Unlock()

	sortNewestFirst(out)
	return out
}

// Comment returns the note with id.
func (t *Tracker) Comment(id int64) (model.Comment, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	i := t.findComment(id)
	if i < 0 {
		return model.Comment{}, false
	}
	return t.comments[i], true
}

// Search returns companies whose name contains query, ignoring case, in
// registry order. A blank query matches nothing.
func (t *Tracker) Search(query string) []model.Company {
	query = strings.TrimSpace(query)
	out := []model.Company{}
	if query == "" {
		return out
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for _, c := range t.companies {
		if c.MatchesName(query) {
			out = append(out, clone(c))
		}
	}
	return out
}

// Elapsed returns the accumulated seconds for id.
func (t *Tracker) Elapsed(id int64) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timeLog.Seconds(id)
}

// TimeLog returns a copy of the elapsed time log.
func (t *Tracker) TimeLog() model.TimeLog {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timeLog.Clone()
}

// Snapshot returns a deep copy of the persisted state.
func (t *Tracker) Snapshot() *model.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return model.NewSnapshot(t.companies, t.timeLog, t.comments).Clone()
}

func sortNewestFirst(comments []model.Comment) {
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Timestamp > comments[j].Timestamp
	})
}

func clone(c model.Company) model.Company {
	if c.LastUsed != nil {
		lastUsed := *c.LastUsed
		c.LastUsed = &lastUsed
	}
	return c
}

func cloneAll(companies []model.Company) []model.Company {
	out := make([]model.Company, len(companies))
	for i, c := range companies {
		out[i] = clone(c)
	}
	return out
}
