package tracker

import "github.com/manav03panchal/ctt/internal/timer"

// companyTarget adapts one company to timer.Target.
type companyTarget struct {
	t  *Tracker
	id int64
}

// Target returns a timer.Target for id, for use by a foreground session.
func (t *Tracker) Target(id int64) (timer.Target, bool) {
	if _, ok := t.Company(id); !ok {
		return nil, false
	}
	return &companyTarget{t: t, id: id}, true
}

func (c *companyTarget) Label() string {
	company, _ := c.t.Company(c.id)
	return company.Name
}

func (c *companyTarget) Seconds() int64 {
	return c.t.Elapsed(c.id)
}

func (c *companyTarget) Running() bool {
	return c.t.IsActive(c.id)
}

func (c *companyTarget) Toggle() {
	c.t.Select(c.id)
}
