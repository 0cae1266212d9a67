package repository

import (
	"context"
	"errors"
	"fmt"

	"expo-patch-backend/cmd/expo-patch/model"

	"gorm.io/gorm"
)

type PatchDataRepo struct {
	store *Store
}

func NewPatchDataRepo(store *Store) *PatchDataRepo {
	return &PatchDataRepo{
		store: store,
	}
}

// ListForEvent returns the patch data of one event ordered by (hall, stand)
// as plain string comparison, matching the table view.
func (r *PatchDataRepo) ListForEvent(ctx context.Context, eventID string) ([]model.PatchData, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	patches := []model.PatchData{}

	result := db.
		WithContext(ctx).
		Where("eventId = ?", eventID).
		Order("hall ASC, stand ASC").
		Find(&patches)

	if result.Error != nil {
		return nil, fmt.Errorf("list patch data: %w", result.Error)
	}

	return patches, nil
}

func (r *PatchDataRepo) Get(ctx context.Context, id string) (*model.PatchData, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	var patch model.PatchData

	result := db.
		WithContext(ctx).
		Where("id = ?", id).
		First(&patch)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("get patch data: %w", result.Error)
	}

	return &patch, nil
}

// Create assigns a fresh id and inserts the row. The referenced event is
// not validated here; a dangling eventId row simply never shows up in any
// event's list and goes away with the next cascade.
func (r *PatchDataRepo) Create(ctx context.Context, patch model.PatchData) (model.PatchData, error) {
	db, err := r.store.DB()
	if err != nil {
		return model.PatchData{}, err
	}

	id, err := newID()
	if err != nil {
		return model.PatchData{}, err
	}
	patch.ID = id

	result := db.
		WithContext(ctx).
		Create(&patch)

	if result.Error != nil {
		return model.PatchData{}, fmt.Errorf("create patch data: %w", result.Error)
	}

	return patch, nil
}

// Update applies the set fields of the changeset; an id that matches no row
// is ErrNotFound.
func (r *PatchDataRepo) Update(ctx context.Context, id string, changes model.PatchDataChangeset) error {
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
		Model(&model.PatchData{}).
		Where("id = ?", id).
		Updates(assign)

	if result.Error != nil {
		return fmt.Errorf("update patch data: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}

	return nil
}

// Delete removes the row; deleting an absent id is a no-op.
func (r *PatchDataRepo) Delete(ctx context.Context, id string) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	result := db.
		WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PatchData{})

	if result.Error != nil {
		return fmt.Errorf("delete patch data: %w", result.Error)
	}

	return nil
}

// Duplicate inserts a copy of the row id under a fresh id, with the stand
// marked and the status reset to pending. It returns (nil, nil) when the
// source row does not exist.
func (r *PatchDataRepo) Duplicate(ctx context.Context, id string) (*model.PatchData, error) {
	original, err := r.Get(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	newPatchID, err := newID()
	if err != nil {
		return nil, err
	}
	duplicate := original.CopyFor(newPatchID)

	result := db.
		WithContext(ctx).
		Create(&duplicate)

	if result.Error != nil {
		return nil, fmt.Errorf("duplicate patch data: %w", result.Error)
	}

	return &duplicate, nil
}
