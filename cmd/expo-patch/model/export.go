package model

// ExportVersion is the format version written into every export document.
const ExportVersion = "1.0"

// ImportMarker is appended to the name of an imported event so it is
// distinguishable from the original.
const ImportMarker = " (imported)"

// EventBundle pairs an event with all of its patch data rows.
type EventBundle struct {
	Event     Event       `json:"event"`
	PatchData []PatchData `json:"patchData"`
}

// ExportDocument is the single-event export format.
type ExportDocument struct {
	Event      Event       `json:"event"`
	PatchData  []PatchData `json:"patchData"`
	ExportDate ISOTime     `json:"exportDate"`
	Version    string      `json:"version"`
}

// ExportAllDocument is the whole-database export format.
type ExportAllDocument struct {
	Events     []EventBundle `json:"events"`
	ExportDate ISOTime       `json:"exportDate"`
	Version    string        `json:"version"`
}

// ImportDocument is the parse target for a single-event import. Event is a
// pointer so a document without an "event" key can be told apart from one
// with an empty event.
type ImportDocument struct {
	Event     *Event      `json:"event"`
	PatchData []PatchData `json:"patchData"`
}
