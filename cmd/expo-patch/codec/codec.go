// Package codec serializes events with their patch data to versioned JSON
// documents and restores them, remapping every identifier on import.
package codec

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"expo-patch-backend/cmd/expo-patch/model"
)

type IEventRepo interface {
	List(ctx context.Context) ([]model.Event, error)
	Get(ctx context.Context, id string) (*model.Event, error)
	Create(ctx context.Context, event model.Event) (model.Event, error)
}

type IPatchDataRepo interface {
	ListForEvent(ctx context.Context, eventID string) ([]model.PatchData, error)
	Create(ctx context.Context, patch model.PatchData) (model.PatchData, error)
}

type Codec struct {
	events  IEventRepo
	patches IPatchDataRepo
	now     func() time.Time
}

func New(events IEventRepo, patches IPatchDataRepo) *Codec {
	return &Codec{
		events:  events,
		patches: patches,
		now:     time.Now,
	}
}

// ExportEvent builds the single-event export document for eventID.
func (c *Codec) ExportEvent(ctx context.Context, eventID string) (model.ExportDocument, error) {
	event, err := c.events.Get(ctx, eventID)
	if err != nil {
		return model.ExportDocument{}, err
	}

	patches, err := c.patches.ListForEvent(ctx, eventID)
	if err != nil {
		return model.ExportDocument{}, err
	}

	return model.ExportDocument{
		Event:      *event,
		PatchData:  patches,
		ExportDate: model.NewISOTime(c.now()),
		Version:    model.ExportVersion,
	}, nil
}

// ExportAll builds the whole-database export document.
func (c *Codec) ExportAll(ctx context.Context) (model.ExportAllDocument, error) {
	events, err := c.events.List(ctx)
	if err != nil {
		return model.ExportAllDocument{}, err
	}

	bundles := []model.EventBundle{}
	for _, event := range events {
		patches, err := c.patches.ListForEvent(ctx, event.ID)
		if err != nil {
			return model.ExportAllDocument{}, err
		}
		bundles = append(bundles, model.EventBundle{
			Event:     event,
			PatchData: patches,
		})
	}

	return model.ExportAllDocument{
		Events:     bundles,
		ExportDate: model.NewISOTime(c.now()),
		Version:    model.ExportVersion,
	}, nil
}

// Import parses a single-event export document and recreates its event and
// patch data rows under fresh ids. The original ids are discarded, the
// event name is marked as imported, and every patch row is rebound to the
// new event id. It returns the new event id.
func (c *Codec) Import(ctx context.Context, data []byte) (string, error) {
	var doc model.ImportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrImportParse, err)
	}
	if doc.Event == nil {
		return "", fmt.Errorf("%w: missing event", model.ErrImportParse)
	}

	event := *doc.Event
	event.ID = ""
	event.Name = event.Name + model.ImportMarker
	event.CreatedAt = time.Time{}
	event.PatchData = nil

	created, err := c.events.Create(ctx, event)
	if err != nil {
		return "", err
	}

	for _, patch := range doc.PatchData {
		patch.ID = ""
		patch.EventID = created.ID
		patch.CreatedAt = time.Time{}
		if _, err := c.patches.Create(ctx, patch); err != nil {
			return "", err
		}
	}

	return created.ID, nil
}
