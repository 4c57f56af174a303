package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/budgetbook/internal/domain"
)

// RecordView is a copy of a record taken while the ledger was locked.
type RecordView struct {
	ID        string
	Kind      domain.Kind
	Amount    decimal.Decimal
	Category  string
	DateTime  time.Time
	Date      string
	TimeID    int64
	DisplayID int
}

func viewOf(r domain.Record) RecordView {
	category, _ := r.CategoryName()
	return RecordView{
		ID:        r.ID(),
		Kind:      r.Kind(),
		Amount:    r.Amount(),
		Category:  category,
		DateTime:  r.DateTime(),
		Date:      r.Date(),
		TimeID:    r.TimeID(),
		DisplayID: r.DisplayID(),
	}
}

func viewsOf(records []domain.Record) []RecordView {
	views := make([]RecordView, len(records))
	for i, r := range records {
		views[i] = viewOf(r)
	}
	return views
}

// LedgerConfig holds the dependencies of LedgerUseCase.
type LedgerConfig struct {
	Repository LedgerRepository
	Events     EventSink
	Now        func() time.Time
	// AutoSave persists the ledger after every successful mutation.
	AutoSave bool
}

// LedgerUseCase owns the single live ledger. Every access goes through mu.
type LedgerUseCase struct {
	mu       sync.RWMutex
	ledger   *domain.Ledger
	repo     LedgerRepository
	events   EventSink
	now      func() time.Time
	autoSave bool
}

// NewLedgerUseCase creates a use case around an empty ledger.
func NewLedgerUseCase(cfg LedgerConfig) *LedgerUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Events == nil {
		cfg.Events = noopSink{}
	}

	return &LedgerUseCase{
		ledger:   domain.NewLedger(),
		repo:     cfg.Repository,
		events:   cfg.Events,
		now:      cfg.Now,
		autoSave: cfg.AutoSave,
	}
}

type noopSink struct{}

func (noopSink) Emit(context.Context, domain.Event) {}

// Load replaces the live ledger with the stored one.
// On failure the live ledger is left untouched.
func (uc *LedgerUseCase) Load(ctx context.Context) error {
	loaded, err := uc.repo.Load(ctx)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.ledger = loaded
	evt := domain.LedgerEvent(domain.EventTypeLedgerLoaded, loaded, uc.now())
	uc.mu.Unlock()

	uc.events.Emit(ctx, evt)
	return nil
}

// LoadOrInit loads the stored ledger, keeping the empty one when no document
// exists yet. It reports whether a document was found.
func (uc *LedgerUseCase) LoadOrInit(ctx context.Context) (bool, error) {
	err := uc.Load(ctx)
	if errors.Is(err, domain.ErrDocumentNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Save writes the live ledger to the repository. Saves are serialized
// so two writers never interleave on the same document.
func (uc *LedgerUseCase) Save(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.saveLocked(ctx)
}

func (uc *LedgerUseCase) saveLocked(ctx context.Context) error {
	if err := uc.repo.Save(ctx, uc.ledger); err != nil {
		return err
	}

	uc.events.Emit(ctx, domain.LedgerEvent(domain.EventTypeLedgerSaved, uc.ledger, uc.now()))
	return nil
}

// afterMutation emits evt and saves when auto-save is on. The mutation
// stays applied in memory even when the save fails.
func (uc *LedgerUseCase) afterMutation(ctx context.Context, evt domain.Event) error {
	uc.events.Emit(ctx, evt)

	if !uc.autoSave {
		return nil
	}
	if err := uc.saveLocked(ctx); err != nil {
		return fmt.Errorf("record applied but not saved: %w", err)
	}
	return nil
}

// AddRecordInput represents input for adding a record.
type AddRecordInput struct {
	Kind     domain.Kind
	Amount   decimal.Decimal
	Category string
	// Date optionally re-dates the record (YYYY-MM-DD); the time of day stays now.
	Date string
}

// AddRecord creates, classifies and stores a record.
func (uc *LedgerUseCase) AddRecord(ctx context.Context, input AddRecordInput) (RecordView, error) {
	r, err := domain.NewRecord(input.Kind, input.Amount, uc.now())
	if err != nil {
		return RecordView{}, err
	}

	if err := r.ClassifyName(input.Category); err != nil {
		return RecordView{}, err
	}

	if input.Date != "" {
		if err := r.ResetDate(input.Date); err != nil {
			return RecordView{}, err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.ledger.AddRecord(r); err != nil {
		return RecordView{}, err
	}

	view := viewOf(r)
	return view, uc.afterMutation(ctx, domain.RecordEvent(domain.EventTypeRecordAdded, r, uc.ledger, uc.now()))
}

// GetRecord returns the record with the given ID.
func (uc *LedgerUseCase) GetRecord(ctx context.Context, id string) (RecordView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.ledger.FetchByID(id)
	if !ok {
		return RecordView{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}

	return viewOf(r), nil
}

// UpdateRecordInput represents an edit; nil fields are left unchanged.
type UpdateRecordInput struct {
	ID       string
	Amount   *decimal.Decimal
	Category *string
	Date     *string
}

// UpdateRecord edits a record. Every change is validated before any is
// applied, so a rejected edit leaves the record as it was.
func (uc *LedgerUseCase) UpdateRecord(ctx context.Context, input UpdateRecordInput) (RecordView, error) {
	if input.Amount != nil {
		if err := domain.ValidateAmount(*input.Amount); err != nil {
			return RecordView{}, err
		}
	}
	if input.Date != nil {
		if _, err := domain.ParseDate(*input.Date); err != nil {
			return RecordView{}, err
		}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.ledger.FetchByID(input.ID)
	if !ok {
		return RecordView{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, input.ID)
	}

	if input.Category != nil {
		if err := validateCategory(r.Kind(), *input.Category); err != nil {
			return RecordView{}, err
		}
		_ = r.ClassifyName(*input.Category)
	}
	if input.Amount != nil {
		_ = r.ResetAmount(*input.Amount)
	}
	if input.Date != nil {
		_ = r.ResetDate(*input.Date)
	}

	view := viewOf(r)
	return view, uc.afterMutation(ctx, domain.RecordEvent(domain.EventTypeRecordUpdated, r, uc.ledger, uc.now()))
}

func validateCategory(kind domain.Kind, name string) error {
	if kind == domain.KindExpense {
		_, err := domain.ParseExpenseCategory(name)
		return err
	}
	_, err := domain.ParseIncomeCategory(name)
	return err
}

// DeleteRecord removes the record with the given ID.
func (uc *LedgerUseCase) DeleteRecord(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.ledger.FetchByID(id)
	if !ok || !uc.ledger.DeleteRecord(r) {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}

	return uc.afterMutation(ctx, domain.RecordEvent(domain.EventTypeRecordDeleted, r, uc.ledger, uc.now()))
}

// ListByMonth returns the records of kind in period, in insertion order or
// by timeID when sorted is set.
func (uc *LedgerUseCase) ListByMonth(ctx context.Context, kind domain.Kind, period string, sorted bool) ([]RecordView, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	records, err := uc.ledger.ListByMonth(kind, period)
	if err != nil {
		return nil, err
	}
	if sorted {
		records = domain.SortByTimeID(records)
	}

	return viewsOf(records), nil
}

// Render numbers the records of kind in period for display. Ordinals from
// earlier renders of kind are cleared first.
func (uc *LedgerUseCase) Render(ctx context.Context, kind domain.Kind, period string, sorted bool) ([]RecordView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	list, err := uc.renderLocked(kind, period, sorted)
	if err != nil {
		return nil, err
	}

	return viewsOf(list.Rows()), nil
}

func (uc *LedgerUseCase) renderLocked(kind domain.Kind, period string, sorted bool) (*domain.DisplayList, error) {
	records, err := uc.ledger.ListByMonth(kind, period)
	if err != nil {
		return nil, err
	}
	if sorted {
		records = domain.SortByTimeID(records)
	}

	uc.ledger.ClearDisplayIDs(kind)
	return domain.NewDisplayList(records), nil
}

// SelectDisplayed renders kind in period and returns the record shown as n.
func (uc *LedgerUseCase) SelectDisplayed(ctx context.Context, kind domain.Kind, period string, sorted bool, n int) (RecordView, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	list, err := uc.renderLocked(kind, period, sorted)
	if err != nil {
		return RecordView{}, err
	}

	r, ok := list.Lookup(n)
	if !ok {
		return RecordView{}, fmt.Errorf("%w: no %s shown as #%d in %s", domain.ErrRecordNotFound, kind, n, period)
	}

	return viewOf(r), nil
}

// Totals returns the all-time aggregates.
func (uc *LedgerUseCase) Totals(ctx context.Context) domain.Totals {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.ledger.Totals()
}

// MonthlySummary aggregates period as of now.
func (uc *LedgerUseCase) MonthlySummary(ctx context.Context, period string) (domain.MonthlySummary, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	return uc.ledger.Summarize(period, uc.now())
}

// CurrentPeriod returns the period containing now.
func (uc *LedgerUseCase) CurrentPeriod() string {
	return domain.PeriodOf(uc.now()).String()
}

// Categories lists the category labels for kind.
func (uc *LedgerUseCase) Categories(kind domain.Kind) ([]string, error) {
	return domain.CategoryNames(kind)
}
