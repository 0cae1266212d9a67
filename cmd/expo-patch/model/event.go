package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type EventStatus string

var (
	EventUpcoming  EventStatus = "upcoming"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
)

// ISOTime is a timestamp persisted as an RFC 3339 UTC string. The events
// table keeps startDate/endDate as TEXT, so ORDER BY startDate is a plain
// string comparison that still sorts chronologically.
type ISOTime struct {
	time.Time
}

func NewISOTime(t time.Time) ISOTime {
	return ISOTime{t.UTC()}
}

func (t ISOTime) Value() (driver.Value, error) {
	return t.UTC().Format(time.RFC3339), nil
}

func (t *ISOTime) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", v, err)
		}
		t.Time = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		t.Time = v.UTC()
		return nil
	default:
		return fmt.Errorf("cannot scan %T into ISOTime", src)
	}
}

func (ISOTime) GormDataType() string {
	return "text"
}

// HallList is the ordered list of hall identifiers of an event, persisted
// as a JSON-encoded TEXT column.
type HallList []string

func (h HallList) Value() (driver.Value, error) {
	if h == nil {
		h = HallList{}
	}
	b, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (h *HallList) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return json.Unmarshal([]byte(v), h)
	case []byte:
		return json.Unmarshal(v, h)
	default:
		return fmt.Errorf("cannot scan %T into HallList", src)
	}
}

func (HallList) GormDataType() string {
	return "text"
}

type Event struct {
	ID          string      `gorm:"column:id;primaryKey" json:"id"`
	Name        string      `gorm:"column:name;not null" json:"name"`
	StartDate   ISOTime     `gorm:"column:startDate;not null" json:"startDate"`
	EndDate     ISOTime     `gorm:"column:endDate;not null" json:"endDate"`
	Status      EventStatus `gorm:"column:status;not null" json:"status"`
	Location    string      `gorm:"column:location;not null" json:"location"`
	Halls       HallList    `gorm:"column:halls;not null" json:"halls"`
	Description string      `gorm:"column:description" json:"description"`
	CreatedAt   time.Time   `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`

	PatchData []PatchData `gorm:"foreignKey:EventID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (m *Event) TableName() string {
	return "events"
}

// EventChangeset names only the event fields to modify. Each field's
// encoding (plain value, RFC 3339 string, JSON array) is decided by its
// static type, never by runtime key inspection.
type EventChangeset struct {
	Name        *string      `json:"name,omitempty"`
	StartDate   *ISOTime     `json:"startDate,omitempty"`
	EndDate     *ISOTime     `json:"endDate,omitempty"`
	Status      *EventStatus `json:"status,omitempty"`
	Location    *string      `json:"location,omitempty"`
	Halls       *HallList    `json:"halls,omitempty"`
	Description *string      `json:"description,omitempty"`
}

func (c EventChangeset) IsEmpty() bool {
	return len(c.Assignments()) == 0
}

// Assignments returns the column assignments for the fields that are set.
func (c EventChangeset) Assignments() map[string]any {
	assign := map[string]any{}
	if c.Name != nil {
		assign["name"] = *c.Name
	}
	if c.StartDate != nil {
		assign["startDate"] = *c.StartDate
	}
	if c.EndDate != nil {
		assign["endDate"] = *c.EndDate
	}
	if c.Status != nil {
		assign["status"] = *c.Status
	}
	if c.Location != nil {
		assign["location"] = *c.Location
	}
	if c.Halls != nil {
		assign["halls"] = *c.Halls
	}
	if c.Description != nil {
		assign["description"] = *c.Description
	}
	return assign
}
