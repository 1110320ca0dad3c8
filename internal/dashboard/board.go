// Package dashboard holds the per-user dashboard state containers. Each
// board owns one fetched collection plus its criteria and page, derives the
// visible page synchronously and reconciles mutations locally once the API
// confirms them.
package dashboard

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"TOURBOOK_WEB/internal/metrics"
	"TOURBOOK_WEB/internal/paging"
)

// State is a board's load state.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

var (
	// ErrActionInFlight is returned when the record already has an
	// outstanding action.
	ErrActionInFlight = errors.New("dashboard: an action is already in progress for this record")
	// ErrClosed is returned by a board whose session ended.
	ErrClosed = errors.New("dashboard: closed")
	// ErrNotFound is returned when an action targets a record the board
	// does not hold.
	ErrNotFound = errors.New("dashboard: record not found")
)

// Deps are shared by every board of a session.
type Deps struct {
	API      API
	Notifier Notifier
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	PageSize int
	Clock    func() time.Time
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}

// Board is the generic state container behind every dashboard.
type Board[T any, C any] struct {
	name   string
	fetch  func(ctx context.Context) ([]T, error)
	idOf   func(T) string
	derive func(items []T, c C, now time.Time) []T
	deps   Deps
	logger *zap.Logger

	mu       sync.Mutex
	items    []T
	state    State
	errMsg   string
	criteria C
	page     int
	inFlight map[string]string
	gen      uint64
	closed   bool
}

func newBoard[T any, C any](name string, deps Deps, initial C,
	fetch func(context.Context) ([]T, error),
	idOf func(T) string,
	derive func([]T, C, time.Time) []T,
) *Board[T, C] {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Board[T, C]{
		name:     name,
		fetch:    fetch,
		idOf:     idOf,
		derive:   derive,
		deps:     deps,
		logger:   logger.With(zap.String("board", name)),
		items:    []T{},
		state:    StateIdle,
		criteria: initial,
		page:     1,
		inFlight: make(map[string]string),
	}
}

// Name identifies the board in logs, metrics and notifications.
func (b *Board[T, C]) Name() string { return b.name }

// Load fetches the collection. A failure leaves the board in the error state
// with an empty collection and is returned for logging; callers render the
// view either way. A result arriving after Close or after a newer Load is
// discarded.
func (b *Board[T, C]) Load(ctx context.Context) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	b.gen++
	gen := b.gen
	b.state = StateLoading
	b.errMsg = ""
	b.mu.Unlock()

	items, err := b.fetch(ctx)
	b.deps.Metrics.ObserveLoad(b.name, err)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed || gen != b.gen {
		b.logger.Debug("Discarding stale load result")
		return nil
	}
	if err != nil {
		b.logger.Warn("Failed to load dashboard", zap.Error(err))
		b.items = []T{}
		b.state = StateError
		b.errMsg = err.Error()
		return err
	}
	if items == nil {
		items = []T{}
	}
	b.items = items
	b.state = StateReady
	b.clampPageLocked(b.deps.now())
	return nil
}

// EnsureLoaded loads the board the first time it is shown.
func (b *Board[T, C]) EnsureLoaded(ctx context.Context) error {
	b.mu.Lock()
	idle := b.state == StateIdle && !b.closed
	b.mu.Unlock()
	if !idle {
		return nil
	}
	return b.Load(ctx)
}

// SetCriteria replaces the criteria and returns to the first page.
func (b *Board[T, C]) SetCriteria(c C) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.criteria = c
	b.page = 1
}

// Criteria returns the current criteria.
func (b *Board[T, C]) Criteria() C {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.criteria
}

// SetPage selects a 1-based page. Values below 1 select the first page;
// pages past the end render empty. The page is capped at paging.MaxPage.
func (b *Board[T, C]) SetPage(p int) {
	if p < 1 {
		p = 1
	}
	if p > paging.MaxPage {
		p = paging.MaxPage
	}
	b.mu.Lock()
	b.page = p
	b.mu.Unlock()
}

// State returns the load state and error message.
func (b *Board[T, C]) State() (State, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state, b.errMsg
}

// Items returns the base collection.
func (b *Board[T, C]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items
}

// View is one rendered page of a board.
type View[T any, C any] struct {
	State      State
	Error      string
	Criteria   C
	Base       []T // the unfiltered collection
	Items      []T
	Page       int
	PageSize   int
	Total      int // filtered count
	TotalPages int
	Range      paging.Range
	InFlight   []string
}

// View derives the current page. It never calls the API.
func (b *Board[T, C]) View(now time.Time) View[T, C] {
	b.mu.Lock()
	items, criteria, page := b.items, b.criteria, b.page
	state, errMsg := b.state, b.errMsg
	inFlight := make([]string, 0, len(b.inFlight))
	for id := range b.inFlight {
		inFlight = append(inFlight, id)
	}
	b.mu.Unlock()
	sort.Strings(inFlight)

	size := b.deps.PageSize
	filtered := b.derive(items, criteria, now)
	shown := paging.Paginate(filtered, page, size)
	return View[T, C]{
		State:      state,
		Error:      errMsg,
		Criteria:   criteria,
		Base:       items,
		Items:      shown,
		Page:       page,
		PageSize:   size,
		Total:      len(filtered),
		TotalPages: paging.TotalPages(len(filtered), size),
		Range:      paging.ComputeRange(page, size, len(shown), len(filtered)),
		InFlight:   inFlight,
	}
}

// Busy reports whether id has an outstanding action.
func (b *Board[T, C]) Busy(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.inFlight[id]
	return ok
}

// Close detaches the board. Later loads and actions fail with ErrClosed and
// results still in flight are ignored.
func (b *Board[T, C]) Close() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
}

func (b *Board[T, C]) clampPageLocked(now time.Time) {
	filtered := b.derive(b.items, b.criteria, now)
	b.page = paging.Clamp(b.page, paging.TotalPages(len(filtered), b.deps.PageSize))
}

// mutation describes one remote action and its local reconciliation.
type mutation[T any] struct {
	id        string
	action    string
	mustExist bool
	call      func(ctx context.Context) error
	patch     func(items []T, now time.Time) []T
	success   string
}

func (b *Board[T, C]) contains(id string) bool {
	for _, it := range b.items {
		if b.idOf(it) == id {
			return true
		}
	}
	return false
}

// mutate runs m. The collection is patched only after the API confirms;
// on failure it is left untouched and the API error is returned unchanged.
func (b *Board[T, C]) mutate(ctx context.Context, m mutation[T]) error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return ErrClosed
	}
	if m.mustExist && !b.contains(m.id) {
		b.mu.Unlock()
		return ErrNotFound
	}
	if _, busy := b.inFlight[m.id]; busy {
		b.mu.Unlock()
		return ErrActionInFlight
	}
	b.inFlight[m.id] = m.action
	b.mu.Unlock()

	err := m.call(ctx)
	b.deps.Metrics.ObserveMutation(b.name, m.action, err)

	b.mu.Lock()
	delete(b.inFlight, m.id)
	if b.closed {
		b.mu.Unlock()
		b.logger.Debug("Discarding action result after close", zap.String("action", m.action))
		return err
	}
	if err == nil {
		now := b.deps.now()
		b.items = m.patch(b.items, now)
		b.clampPageLocked(now)
	}
	b.mu.Unlock()

	if err != nil {
		b.logger.Warn("Dashboard action failed",
			zap.String("action", m.action), zap.String("id", m.id), zap.Error(err))
		b.notify(KindError, err.Error())
		return err
	}
	b.logger.Info("Dashboard action applied", zap.String("action", m.action), zap.String("id", m.id))
	b.notify(KindSuccess, m.success)
	return nil
}

func (b *Board[T, C]) notify(kind Kind, msg string) {
	if b.deps.Notifier != nil {
		b.deps.Notifier.Notify(kind, b.name, msg)
	}
}
