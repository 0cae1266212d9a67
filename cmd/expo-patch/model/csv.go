package model

// PatchCSV is the flat row layout for the CSV hand-out export of an
// event's patch list.
type PatchCSV struct {
	Hall     string `csv:"hall"`
	Stand    string `csv:"stand"`
	Company  string `csv:"company"`
	Product  string `csv:"product"`
	DV       string `csv:"dv"`
	ASW      string `csv:"asw"`
	Port     string `csv:"port"`
	CPEEqu   string `csv:"cpe_equ"`
	Info     string `csv:"info"`
	Status   string `csv:"status"`
	Priority string `csv:"priority"`
}

func NewPatchCSV(p PatchData) PatchCSV {
	return PatchCSV{
		Hall:     p.Hall,
		Stand:    p.Stand,
		Company:  p.Company,
		Product:  p.Product,
		DV:       p.DV,
		ASW:      p.ASW,
		Port:     p.Port,
		CPEEqu:   p.CPEEqu,
		Info:     p.Info,
		Status:   string(p.Status),
		Priority: string(p.Priority),
	}
}
