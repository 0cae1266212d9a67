// Package state holds the event list and active database path the UI
// renders from. Every mutation goes through here and is followed by a full
// reload of the list; the UI never patches the in-memory copy itself.
package state

import (
	"context"
	"slices"
	"sync"

	"expo-patch-backend/cmd/expo-patch/model"
)

type IEventRepo interface {
	List(ctx context.Context) ([]model.Event, error)
	Create(ctx context.Context, event model.Event) (model.Event, error)
	Update(ctx context.Context, id string, changes model.EventChangeset) error
	Delete(ctx context.Context, id string) error
}

type IDatabaseStore interface {
	Initialize(path string) (string, error)
	CurrentPath() (string, bool)
}

type Adapter struct {
	mu     sync.Mutex
	db     IDatabaseStore
	events IEventRepo
	cached []model.Event
}

func NewAdapter(db IDatabaseStore, events IEventRepo) *Adapter {
	return &Adapter{
		db:     db,
		events: events,
	}
}

// Reload replaces the cached event list with a fresh fetch.
func (a *Adapter) Reload(ctx context.Context) error {
	events, err := a.events.List(ctx)
	if err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.cached = events
	return nil
}

// Events returns the event list as of the last reload.
func (a *Adapter) Events() []model.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return slices.Clone(a.cached)
}

// CurrentPath reports the active database file, or "" when none is open.
func (a *Adapter) CurrentPath() string {
	path, ok := a.db.CurrentPath()
	if !ok {
		return ""
	}
	return path
}

func (a *Adapter) CreateEvent(ctx context.Context, event model.Event) (model.Event, error) {
	created, err := a.events.Create(ctx, event)
	if err != nil {
		return model.Event{}, err
	}
	if err := a.Reload(ctx); err != nil {
		return model.Event{}, err
	}
	return created, nil
}

func (a *Adapter) UpdateEvent(ctx context.Context, id string, changes model.EventChangeset) error {
	if err := a.events.Update(ctx, id, changes); err != nil {
		return err
	}
	return a.Reload(ctx)
}

func (a *Adapter) DeleteEvent(ctx context.Context, id string) error {
	if err := a.events.Delete(ctx, id); err != nil {
		return err
	}
	return a.Reload(ctx)
}

// SwitchDatabase makes path the active database file and reloads the event
// list from it. The store serializes the close/reopen against in-flight
// operations.
func (a *Adapter) SwitchDatabase(ctx context.Context, path string) (string, error) {
	resolved, err := a.db.Initialize(path)
	if err != nil {
		return "", err
	}
	if err := a.Reload(ctx); err != nil {
		return "", err
	}
	return resolved, nil
}
