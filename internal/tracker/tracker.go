// Package tracker owns the tracker state: the company registry, the elapsed
// time log, the notes and the active selection. Every mutation goes through a
// Tracker, which arms the one-second tick while a company is active and
// mirrors the state to its Store after each change.
package tracker

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/manav03panchal/ctt/internal/logging"
	"github.com/manav03panchal/ctt/internal/model"
	"github.com/manav03panchal/ctt/internal/storage"
	"github.com/manav03panchal/ctt/internal/timer"
	"github.com/manav03panchal/ctt/internal/validate"
)

// Clock returns the current time.
type Clock func() time.Time

// Store persists snapshots. storage.SnapshotRepo implements it.
type Store interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	Save(ctx context.Context, snap *model.Snapshot) error
}

// Options configures a Tracker. Zero values pick the defaults.
type Options struct {
	// Store mirrors state after every change. Nil keeps state in memory only.
	Store Store
	// Scheduler arms the tick task. Default: timer.TickerScheduler.
	Scheduler timer.Scheduler
	// Clock stamps lastUsed and note timestamps. Default: time.Now.
	Clock Clock
	// TickInterval is how often the active company accrues one second.
	TickInterval time.Duration
	// FavoritesLimit caps Favorites. Default: 5.
	FavoritesLimit int
	// RecentsLimit caps Recents. Default: 5.
	RecentsLimit int
}

// Tracker coordinates all tracker state.
type Tracker struct {
	mu        sync.Mutex
	companies []model.Company
	timeLog   model.TimeLog
	comments  []model.Comment
	selection model.Selection
	lastID    int64

	// generation is bumped on every arm and disarm; a tick only counts if it
	// still matches.
	generation uint64
	stopTick   timer.Stop

	listenerMu sync.Mutex
	listeners  map[int]func()
	nextListen int

	saveMu     sync.Mutex
	storageErr error

	store     Store
	scheduler timer.Scheduler
	clock     Clock
	interval  time.Duration
	favLimit  int
	recLimit  int
	ctx       context.Context
}

// New creates a tracker seeded with the default companies.
func New(opts Options) *Tracker {
	t := &Tracker{
		companies: model.SeedCompanies(),
		timeLog:   model.TimeLog{},
		comments:  []model.Comment{},
		listeners: make(map[int]func()),
		store:     opts.Store,
		scheduler: opts.Scheduler,
		clock:     opts.Clock,
		interval:  opts.TickInterval,
		favLimit:  opts.FavoritesLimit,
		recLimit:  opts.RecentsLimit,
		ctx:       logging.NewRequestContext(),
	}
	if t.scheduler == nil {
		t.scheduler = timer.TickerScheduler{}
	}
	if t.clock == nil {
		t.clock = time.Now
	}
	if t.interval <= 0 {
		t.interval = time.Second
	}
	if t.favLimit <= 0 {
		t.favLimit = 5
	}
	if t.recLimit <= 0 {
		t.recLimit = 5
	}
	t.lastID = maxID(t.companies, t.comments)
	return t
}

// Load replaces the state with the stored snapshot. A missing or unreadable
// snapshot is logged and the current state is kept.
func (t *Tracker) Load(ctx context.Context) {
	if t.store == nil {
		return
	}
	log := logging.FromContext(ctx).With(logging.KeyOperation, "load")

	snap, err := t.store.Load(ctx)
	if err != nil {
		if storage.IsErrKeyNotFound(err) {
			log.Debug("no stored snapshot, using seed companies")
			return
		}
		t.setStorageErr(err)
		log.Warn("ignoring stored snapshot", logging.KeyError, err)
		return
	}

	t.mu.Lock()
	t.replace(snap)
	t.mu.Unlock()

	log.Debug("state restored", logging.KeyCount, len(snap.Companies))
	t.notify()
}

// Close disarms the tick task and waits for an in-flight save to finish.
func (t *Tracker) Close() {
	t.mu.Lock()
	t.disarm()
	t.mu.Unlock()

	t.saveMu.Lock()
	t.saveMu.Unlock()
}

// Select toggles the selection of id. Selecting the active company pauses it;
// selecting any other known company makes it active and stamps its lastUsed.
// It returns false if id is not in the registry.
func (t *Tracker) Select(id int64) bool {
	t.mu.Lock()
	if t.selection.Is(id) {
		t.selection.ClearActive()
		t.disarm()
		t.mu.Unlock()
		t.changed("select", logging.KeyCompany, id)
		return true
	}

	i := t.findCompany(id)
	if i < 0 {
		t.mu.Unlock()
		return false
	}
	t.companies[i].Touch(t.clock())
	t.activate(id)
	t.mu.Unlock()

	t.changed("select", logging.KeyCompany, id)
	return true
}

// Pause clears the selection. It returns false if nothing was active.
func (t *Tracker) Pause() bool {
	t.mu.Lock()
	if !t.selection.IsTracking() {
		t.mu.Unlock()
		return false
	}
	id := t.selection.CompanyID
	t.selection.ClearActive()
	t.disarm()
	t.mu.Unlock()

	t.changed("pause", logging.KeyCompany, id)
	return true
}

// AddCompany appends a new non-favorite company and makes it active.
// Names are trimmed and blank names are ignored. Length and character rules
// belong to the input surfaces.
func (t *Tracker) AddCompany(name string) (model.Company, bool) {
	name = strings.TrimSpace(name)
	if err := validate.NonEmpty(name, "company"); err != nil {
		logging.DebugLog("company not added", logging.KeyError, err)
		return model.Company{}, false
	}

	t.mu.Lock()
	now := t.clock()
	company := model.NewCompany(t.nextID(now), name, now)
	t.companies = append(t.companies, company)
	t.activate(company.ID)
	t.mu.Unlock()

	t.changed("add_company", logging.KeyCompany, company.ID)
	return clone(company), true
}

// ToggleFavorite flips the favorite flag of id.
func (t *Tracker) ToggleFavorite(id int64) (model.Company, bool) {
	t.mu.Lock()
	i := t.findCompany(id)
	if i < 0 {
		t.mu.Unlock()
		return model.Company{}, false
	}
	t.companies[i].IsFavorite = !t.companies[i].IsFavorite
	company := clone(t.companies[i])
	t.mu.Unlock()

	t.changed("favorite", logging.KeyCompany, id)
	return company, true
}

// AddComment attaches a note to the active company. It is ignored when
// nothing is active or the text is blank.
func (t *Tracker) AddComment(text string) (model.Comment, bool) {
	t.mu.Lock()
	if !t.selection.IsTracking() {
		t.mu.Unlock()
		return model.Comment{}, false
	}
	id := t.selection.CompanyID
	t.mu.Unlock()

	return t.AddCommentFor(id, text)
}

// AddCommentFor attaches a note to companyID without changing the selection.
func (t *Tracker) AddCommentFor(companyID int64, text string) (model.Comment, bool) {
	text = strings.TrimSpace(text)
	if err := validate.NonEmpty(text, "note"); err != nil {
		logging.DebugLog("note not added", logging.KeyError, err)
		return model.Comment{}, false
	}

	t.mu.Lock()
	if t.findCompany(companyID) < 0 {
		t.mu.Unlock()
		return model.Comment{}, false
	}
	now := t.clock()
	comment := model.NewComment(t.nextID(now), companyID, text, now)
	t.comments = append(t.comments, comment)
	t.mu.Unlock()

	t.changed("add_note", logging.KeyComment, comment.ID)
	return comment, true
}

// EditComment replaces the text of note id. Blank text is ignored.
func (t *Tracker) EditComment(id int64, text string) (model.Comment, bool) {
	text = strings.TrimSpace(text)
	if err := validate.NonEmpty(text, "note"); err != nil {
		return model.Comment{}, false
	}

	t.mu.Lock()
	i := t.findComment(id)
	if i < 0 {
		t.mu.Unlock()
		return model.Comment{}, false
	}
	t.comments[i].Text = text
	comment := t.comments[i]
	t.mu.Unlock()

	t.changed("edit_note", logging.KeyComment, id)
	return comment, true
}

// Tick adds one second to the active company. It does nothing while paused.
func (t *Tracker) Tick() {
	t.mu.Lock()
	counted := t.incrementLocked()
	t.mu.Unlock()

	if counted {
		t.notify()
		t.persist()
	}
}

// tickGeneration is the scheduled form of Tick. It is dropped if the tick
// task it was armed for has since been disarmed.
func (t *Tracker) tickGeneration(gen uint64) {
	t.mu.Lock()
	counted := gen == t.generation && t.incrementLocked()
	t.mu.Unlock()

	if counted {
		t.notify()
		t.persist()
	}
}

// incrementLocked adds one second to the active company. Caller holds mu.
func (t *Tracker) incrementLocked() bool {
	if !t.selection.IsTracking() {
		return false
	}
	t.timeLog[t.selection.CompanyID]++
	return true
}

// OnChange registers fn to run after every state change, including ticks.
// fn runs without the tracker lock held. The returned func unregisters it.
func (t *Tracker) OnChange(fn func()) func() {
	t.listenerMu.Lock()
	id := t.nextListen
	t.nextListen++
	t.listeners[id] = fn
	t.listenerMu.Unlock()

	return func() {
		t.listenerMu.Lock()
		delete(t.listeners, id)
		t.listenerMu.Unlock()
	}
}

// StorageErr returns the most recent persistence failure, if any.
func (t *Tracker) StorageErr() error {
	t.saveMu.Lock()
	defer t.saveMu.Unlock()
	return t.storageErr
}

// activate selects id and re-arms the tick task. Caller holds mu.
func (t *Tracker) activate(id int64) {
	t.disarm()
	t.selection.SetActive(id)

	t.generation++
	gen := t.generation
	t.stopTick = t.scheduler.Every(t.interval, func() { t.tickGeneration(gen) })
}

// disarm stops the tick task. Caller holds mu. Once it returns no tick
// armed before it can count.
func (t *Tracker) disarm() {
	t.generation++
	if t.stopTick != nil {
		t.stopTick()
		t.stopTick = nil
	}
}

// replace swaps in every collection from snap and clears the selection.
// Caller holds mu.
func (t *Tracker) replace(snap *model.Snapshot) {
	snap = snap.Clone()
	t.companies = snap.Companies
	t.timeLog = snap.TimeLog
	t.comments = snap.Comments
	t.selection.ClearActive()
	t.disarm()
	t.lastID = maxID(t.companies, t.comments)
}

// nextID returns a time-based id that never repeats. Caller holds mu.
func (t *Tracker) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= t.lastID {
		id = t.lastID + 1
	}
	t.lastID = id
	return id
}

func (t *Tracker) findCompany(id int64) int {
	for i := range t.companies {
		if t.companies[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *Tracker) findComment(id int64) int {
	for i := range t.comments {
		if t.comments[i].ID == id {
			return i
		}
	}
	return -1
}

// changed logs a mutation, notifies listeners and persists.
func (t *Tracker) changed(op string, args ...any) {
	logging.FromContext(t.ctx).Debug("state changed", append([]any{logging.KeyOperation, op}, args...)...)
	t.notify()
	t.persist()
}

func (t *Tracker) notify() {
	t.listenerMu.Lock()
	fns := make([]func(), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// persist saves the current state. Saves are serialized and each one takes
// a fresh snapshot, so the last save always carries the latest state.
func (t *Tracker) persist() {
	if t.store == nil {
		return
	}

	t.saveMu.Lock()
	defer t.saveMu.Unlock()

	snap := t.Snapshot()
	if err := t.store.Save(t.ctx, snap); err != nil {
		t.storageErr = err
		logging.FromContext(t.ctx).Warn("save failed, keeping state in memory",
			logging.KeyOperation, "save",
			logging.KeyError, err)
		return
	}
	t.storageErr = nil
}

func (t *Tracker) setStorageErr(err error) {
	t.saveMu.Lock()
	t.storageErr = err
	t.saveMu.Unlock()
}

func maxID(companies []model.Company, comments []model.Comment) int64 {
	var highest int64
	for _, c := range companies {
		if c.ID > highest {
			highest = c.ID
		}
	}
	for _, c := range comments {
		if c.ID > highest {
			highest = c.ID
		}
	}
	return highest
}
