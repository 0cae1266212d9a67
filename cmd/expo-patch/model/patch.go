package model

import "time"

type PatchStatus string

var (
	PatchPending     PatchStatus = "pending"
	PatchDistributed PatchStatus = "distributed"
	PatchDeployed    PatchStatus = "deployed"
	PatchReturned    PatchStatus = "returned"
)

type PatchPriority string

var (
	PriorityNormal PatchPriority = "normal"
	PriorityHigh   PatchPriority = "high"
	PriorityUrgent PatchPriority = "urgent"
)

// CopySuffix is appended to the stand of a duplicated patch data row.
const CopySuffix = "-COPY"

// PatchData is one technical installation record for an exhibition stand,
// always tied to exactly one event.
type PatchData struct {
	ID        string        `gorm:"column:id;primaryKey" json:"id"`
	EventID   string        `gorm:"column:eventId;not null;index" json:"eventId"`
	Hall      string        `gorm:"column:hall;not null" json:"hall"`
	Stand     string        `gorm:"column:stand;not null" json:"stand"`
	Company   string        `gorm:"column:company;not null" json:"company"`
	Product   string        `gorm:"column:product" json:"product"`
	DV        string        `gorm:"column:dv" json:"dv"`
	ASW       string        `gorm:"column:asw" json:"asw"`
	Port      string        `gorm:"column:port" json:"port"`
	CPEEqu    string        `gorm:"column:cpeEqu" json:"cpeEqu"`
	Info      string        `gorm:"column:info" json:"info"`
	Status    PatchStatus   `gorm:"column:status;not null;default:pending" json:"status"`
	Priority  PatchPriority `gorm:"column:priority;not null;default:normal" json:"priority"`
	CreatedAt time.Time     `gorm:"column:createdAt;autoCreateTime" json:"createdAt"`
}

func (m *PatchData) TableName() string {
	return "patch_data"
}

// CopyFor returns the duplicate of m to insert under newID: the stand is
// marked with CopySuffix, the status reset to pending, everything else is
// carried over unchanged.
func (m PatchData) CopyFor(newID string) PatchData {
	d := m
	d.ID = newID
	d.Stand = m.Stand + CopySuffix
	d.Status = PatchPending
	d.CreatedAt = time.Time{}
	return d
}

// PatchDataChangeset names only the patch data fields to modify.
type PatchDataChangeset struct {
	EventID  *string        `json:"eventId,omitempty"`
	Hall     *string        `json:"hall,omitempty"`
	Stand    *string        `json:"stand,omitempty"`
	Company  *string        `json:"company,omitempty"`
	Product  *string        `json:"product,omitempty"`
	DV       *string        `json:"dv,omitempty"`
	ASW      *string        `json:"asw,omitempty"`
	Port     *string        `json:"port,omitempty"`
	CPEEqu   *string        `json:"cpeEqu,omitempty"`
	Info     *string        `json:"info,omitempty"`
	Status   *PatchStatus   `json:"status,omitempty"`
	Priority *PatchPriority `json:"priority,omitempty"`
}

func (c PatchDataChangeset) IsEmpty() bool {
	return len(c.Assignments()) == 0
}

// Assignments returns the column assignments for the fields that are set.
func (c PatchDataChangeset) Assignments() map[string]any {
	assign := map[string]any{}
	if c.EventID != nil {
		assign["eventId"] = *c.EventID
	}
	if c.Hall != nil {
		assign["hall"] = *c.Hall
	}
	if c.Stand != nil {
		assign["stand"] = *c.Stand
	}
	if c.Company != nil {
		assign["company"] = *c.Company
	}
	if c.Product != nil {
		assign["product"] = *c.Product
	}
	if c.DV != nil {
		assign["dv"] = *c.DV
	}
	if c.ASW != nil {
		assign["asw"] = *c.ASW
	}
	if c.Port != nil {
		assign["port"] = *c.Port
	}
	if c.CPEEqu != nil {
		assign["cpeEqu"] = *c.CPEEqu
	}
	if c.Info != nil {
		assign["info"] = *c.Info
	}
	if c.Status != nil {
		assign["status"] = *c.Status
	}
	if c.Priority != nil {
		assign["priority"] = *c.Priority
	}
	return assign
}
