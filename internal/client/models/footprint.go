// Package models defines the plain records exchanged with the Eco-Trackify
// backend and cached locally by the client.
package models

// FootprintValues are the three user-estimated figures submitted to the
// backend. Units are kg CO2 equivalents, as entered by the user.
type FootprintValues struct {
	TransportationEmission float64 `json:"transportationEmission"`
	EnergyConsumption      float64 `json:"energyConsumption"`
	WasteDisposal          float64 `json:"wasteDisposal"`
}

// Breakdown is the backend-computed footprint: the three categories echoed
// back plus their total. Total is trusted as provided and never recomputed
// client-side. The record is cached verbatim and overwritten wholesale on
// each successful submission.
type Breakdown struct {
	TransportationEmission float64 `json:"transportationEmission"`
	EnergyConsumption      float64 `json:"energyConsumption"`
	WasteDisposal          float64 `json:"wasteDisposal"`
	Total                  float64 `json:"total"`
}
