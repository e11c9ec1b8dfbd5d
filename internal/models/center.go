// internal/models/center.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MultiValueSeparator joins the entries of Discipline and Pathologies.
const MultiValueSeparator = "\r\n"

// Center is one record of the directory. JSON keys follow the source dataset.
// Discipline and Pathologies hold several entries joined by MultiValueSeparator.
type Center struct {
	ID          string     `json:"id"`
	Name        string     `json:"Name"`
	Description string     `json:"Description"`
	Discipline  string     `json:"Discipline"`
	Pathologies string     `json:"Pathologies / Prévention"`
	Address     string     `json:"address"`
	Lat         Coordinate `json:"lat"`
	Lng         Coordinate `json:"lng"`
}

// Disciplines returns the trimmed, non-empty entries of the Discipline field.
func (c Center) Disciplines() []string { return SplitMultiValue(c.Discipline) }

// PathologyList returns the trimmed, non-empty entries of the Pathologies field.
func (c Center) PathologyList() []string { return SplitMultiValue(c.Pathologies) }

// SplitMultiValue splits a denormalized field on MultiValueSeparator,
// trimming every segment and dropping the empty ones.
func SplitMultiValue(field string) []string {
	parts := strings.Split(field, MultiValueSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Coordinate keeps a decimal degree exactly as it appeared in the dataset,
// either a JSON number or a JSON string, so it is written back unchanged.
type Coordinate struct {
	raw json.RawMessage
}

// NewCoordinate builds a numeric coordinate.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{raw: json.RawMessage(strconv.FormatFloat(v, 'f', -1, 64))}
}

// Float parses the coordinate as a float64.
func (c Coordinate) Float() (float64, error) {
	if len(c.raw) == 0 {
		return 0, fmt.Errorf("coordinate is empty")
	}
	text := string(c.raw)
	if c.raw[0] == '"' {
		if err := json.Unmarshal(c.raw, &text); err != nil {
			return 0, fmt.Errorf("coordinate %s: %w", c.raw, err)
		}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("coordinate %s: %w", c.raw, err)
	}
	return v, nil
}

func (c Coordinate) String() string { return string(c.raw) }

func (c Coordinate) MarshalJSON() ([]byte, error) {
	if len(c.raw) == 0 {
		return []byte("null"), nil
	}
	return c.raw, nil
}

func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		c.raw = nil
		return nil
	}
	if data[0] != '"' && data[0] != '-' && (data[0] < '0' || data[0] > '9') {
		return fmt.Errorf("coordinate must be a number or a string, got %s", data)
	}
	c.raw = append(json.RawMessage(nil), data...)
	return nil
}

// NearbyCenter is a copy of a Center annotated with its distance to a query point.
type NearbyCenter struct {
	Center
	DistanceKm float64 `json:"distance_km"`
}
