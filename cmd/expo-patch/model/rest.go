package model

type BaseResponse struct {
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

type EventCreateRequest struct {
	Name        string      `json:"name"`
	StartDate   ISOTime     `json:"startDate"`
	EndDate     ISOTime     `json:"endDate"`
	Status      EventStatus `json:"status"`
	Location    string      `json:"location"`
	Halls       HallList    `json:"halls"`
	Description string      `json:"description"`
}

// Event builds the entity to insert; the id is assigned by the repository.
func (r EventCreateRequest) Event() Event {
	status := r.Status
	if status == "" {
		status = EventUpcoming
	}
	halls := r.Halls
	if halls == nil {
		halls = HallList{}
	}
	return Event{
		Name:        r.Name,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Status:      status,
		Location:    r.Location,
		Halls:       halls,
		Description: r.Description,
	}
}

type PatchDataCreateRequest struct {
	EventID  string        `json:"eventId"`
	Hall     string        `json:"hall"`
	Stand    string        `json:"stand"`
	Company  string        `json:"company"`
	Product  string        `json:"product"`
	DV       string        `json:"dv"`
	ASW      string        `json:"asw"`
	Port     string        `json:"port"`
	CPEEqu   string        `json:"cpeEqu"`
	Info     string        `json:"info"`
	Status   PatchStatus   `json:"status"`
	Priority PatchPriority `json:"priority"`
}

// PatchData builds the entity to insert, filling in the status and priority
// defaults when the caller left them empty.
func (r PatchDataCreateRequest) PatchData() PatchData {
	status := r.Status
	if status == "" {
		status = PatchPending
	}
	priority := r.Priority
	if priority == "" {
		priority = PriorityNormal
	}
	return PatchData{
		EventID:  r.EventID,
		Hall:     r.Hall,
		Stand:    r.Stand,
		Company:  r.Company,
		Product:  r.Product,
		DV:       r.DV,
		ASW:      r.ASW,
		Port:     r.Port,
		CPEEqu:   r.CPEEqu,
		Info:     r.Info,
		Status:   status,
		Priority: priority,
	}
}

type DatabaseRequest struct {
	Path string `json:"path"`
}

type DatabaseInfo struct {
	Path string `json:"path"`
}

type ImportResult struct {
	EventID string `json:"eventId"`
}
