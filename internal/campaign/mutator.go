// Package campaign validates and appends new campaigns to the state document.
package campaign

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"engagedash/internal/state"
)

// Saver persists a whole document. *state.Store satisfies it.
type Saver interface {
	Save(doc *state.Document) error
}

// Fields are the user-supplied values for a new campaign. Status and
// NextSend are optional.
type Fields struct {
	Name     string
	Segment  string
	Trigger  string
	Channel  string
	Template string
	Status   string
	NextSend string
}

// Mutator appends campaigns and persists the result.
type Mutator struct {
	store  Saver
	now    func() time.Time
	logger *zap.Logger
}

// Option configures a Mutator.
type Option func(*Mutator)

// WithClock injects the time source used for the default next_send.
func WithClock(now func() time.Time) Option {
	return func(m *Mutator) { m.now = now }
}

// WithLogger sets the mutator's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Mutator) { m.logger = logger }
}

// NewMutator creates a mutator that saves through store.
func NewMutator(store Saver, opts ...Option) *Mutator {
	m := &Mutator{
		store:  store,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Add validates f, appends the campaign to doc and saves doc. Nothing is
// appended when validation fails. If the save fails the campaign stays in
// doc's in-memory list; callers treat the error as fatal.
func (m *Mutator) Add(doc *state.Document, f Fields) (state.Campaign, error) {
	if doc == nil {
		return state.Campaign{}, fmt.Errorf("cannot add campaign to nil state document")
	}
	c, err := m.build(f)
	if err != nil {
		return state.Campaign{}, err
	}

	doc.Campaigns = append(doc.Campaigns, c)
	if err := m.store.Save(doc); err != nil {
		m.logger.Error("campaign appended in memory but not saved",
			zap.String("campaign", c.Name), zap.Error(err))
		return c, fmt.Errorf("failed to save campaign %q: %w", c.Name, err)
	}

	m.logger.Info("campaign added",
		zap.String("campaign", c.Name),
		zap.String("segment", c.Segment),
		zap.String("status", c.Status),
		zap.String("next_send", c.NextSend))
	return c, nil
}

func (m *Mutator) build(f Fields) (state.Campaign, error) {
	if err := Validate(f); err != nil {
		return state.Campaign{}, err
	}

	// Values are stored as supplied; only blank optional fields are filled.
	status := f.Status
	if strings.TrimSpace(status) == "" {
		status = state.StatusScheduled
	}
	nextSend := f.NextSend
	if strings.TrimSpace(nextSend) == "" {
		nextSend = m.now().Format(state.DateLayout)
	}

	return state.Campaign{
		Name:     f.Name,
		Segment:  f.Segment,
		Trigger:  f.Trigger,
		Channel:  f.Channel,
		Template: f.Template,
		Status:   status,
		NextSend: nextSend,
	}, nil
}
