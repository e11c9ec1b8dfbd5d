// internal/models/response.go
package models

// Envelopes returned by the HTTP API. The client package decodes the same types.

type CenterPage struct {
	Total  int      `json:"total"`
	Limit  int      `json:"limit"`
	Offset int      `json:"offset"`
	Data   []Center `json:"data"`
}

type SearchResult struct {
	Query string   `json:"query"`
	Count int      `json:"count"`
	Data  []Center `json:"data"`
}

type DisciplineResult struct {
	Discipline string   `json:"discipline"`
	Count      int      `json:"count"`
	Data       []Center `json:"data"`
}

type PathologyResult struct {
	Pathology string   `json:"pathology"`
	Count     int      `json:"count"`
	Data      []Center `json:"data"`
}

type DisciplineList struct {
	Count       int      `json:"count"`
	Disciplines []string `json:"disciplines"`
}

type PathologyList struct {
	Count       int      `json:"count"`
	Pathologies []string `json:"pathologies"`
}

// Location is a query point in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type NearbyResult struct {
	Location Location       `json:"location"`
	RadiusKm float64        `json:"radius_km"`
	Count    int            `json:"count"`
	Data     []NearbyCenter `json:"data"`
}

// ServiceInfo is served at the API root.
type ServiceInfo struct {
	Message      string            `json:"message"`
	TotalCenters int               `json:"total_centers"`
	Endpoints    map[string]string `json:"endpoints"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
