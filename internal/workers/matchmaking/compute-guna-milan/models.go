// internal/workers/matchmaking/compute-guna-milan/models.go
package computegunamilan

import "guna-milan-workers/internal/gunamilan"

// Input is the subset of process variables the worker reads.
type Input struct {
	RequestID string `json:"requestId,omitempty"`
	Language  string `json:"language,omitempty"`
	Male      Person `json:"male"`
	Female    Person `json:"female"`
}

// Person carries inline chart data, a reference to a stored chart, or both.
// Inline fields win over the stored chart.
type Person struct {
	ChartID string `json:"chartId,omitempty"`
	gunamilan.PersonInput
}

// needsChart reports whether the astro details have to come from the chart store.
func (p Person) needsChart() bool {
	return p.ChartID != "" && len(p.AstroDetails) == 0
}

// withChart overlays the request's own fields on a stored chart.
func (p Person) withChart(chart *gunamilan.PersonInput) gunamilan.PersonInput {
	merged := *chart
	if p.BirthDetails != nil {
		merged.BirthDetails = p.BirthDetails
	}
	if p.Planets != nil {
		merged.Planets = p.Planets
	}
	merged.Manglik = chart.Manglik || p.Manglik
	return merged
}

// Output is written back to the process as job variables.
type Output struct {
	ReportID    string            `json:"reportId"`
	RequestID   string            `json:"requestId,omitempty"`
	GunaMilan   *gunamilan.Result `json:"gunaMilan"`
	TotalPoints float64           `json:"totalPoints"`
	Percentage  float64           `json:"percentage"`
	Favorable   bool              `json:"favorable"`
	Cached      bool              `json:"cached"`
}
