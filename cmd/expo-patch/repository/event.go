package repository

import (
	"context"
	"errors"
	"fmt"

	"expo-patch-backend/cmd/expo-patch/model"

	"gorm.io/gorm"
)

type EventRepo struct {
	store *Store
}

func NewEventRepo(store *Store) *EventRepo {
	return &EventRepo{
		store: store,
	}
}

// List returns all events ordered by start date. The startDate column holds
// RFC 3339 text, so the string ordering is chronological.
func (r *EventRepo) List(ctx context.Context) ([]model.Event, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	events := []model.Event{}

	result := db.
		WithContext(ctx).
		Order("startDate ASC").
		Find(&events)

	if result.Error != nil {
		return nil, fmt.Errorf("list events: %w", result.Error)
	}

	return events, nil
}

func (r *EventRepo) Get(ctx context.Context, id string) (*model.Event, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var event model.Event

	result := db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&event)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", result.Error)
	}

	return &event, nil
}

// Create assigns a fresh id and inserts the event.
func (r *EventRepo) Create(ctx context.Context, event model.Event) (model.Event, error) {
	db, err := r.store.DB()
	if err != nil {
		return model.Event{}, err
	}

	id, err := newID()
	if err != nil {
		return model.Event{}, err
	}
	event.ID = id

	result := db.
		WithContext(ctx).
		Create(&event)

	if result.Error != nil {
		return model.Event{}, fmt.Errorf("create event: %w", result.Error)
	}

	return event, nil
}

// Update applies the set fields of the changeset. A changeset naming no
// fields is a successful no-op; an id that matches no row is ErrNotFound.
func (r *EventRepo) Update(ctx context.Context, id string, changes model.EventChangeset) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	assign := changes.Assignments()
	if len(assign) == 0 {
		return nil
	}

	result := db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", id).
		Updates(assign)

	if result.Error != nil {
		return fmt.Errorf("update event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Delete removes the event; the foreign key cascade removes its patch data.
// Deleting an absent id is a no-op.
func (r *EventRepo) Delete(ctx context.Context, id string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	result := db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Event{})

	if result.Error != nil {
		return fmt.Errorf("delete event: %w", result.Error)
	}

	return nil
}
