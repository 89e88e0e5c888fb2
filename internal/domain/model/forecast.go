package model

import (
	"bytes"
	"encoding/json"
)

// ForecastQuery identifies one village forecast request.
type ForecastQuery struct {
	BaseDate   string // yyyyMMdd
	BaseTime   string // HHmm
	Coordinate Coordinate
}

// ForecastItem is one row of the provider item list, kept as raw strings.
type ForecastItem struct {
	FcstDate  string `json:"fcstDate"`
	FcstTime  string `json:"fcstTime"`
	Category  string `json:"category"`
	FcstValue string `json:"fcstValue"`
}

// ForecastRecord maps display labels to display values in first-seen label order.
// Putting an existing label again replaces its value but keeps its position.
type ForecastRecord struct {
	labels []string
	values map[string]string
}

func NewForecastRecord() *ForecastRecord {
	return &ForecastRecord{values: make(map[string]string)}
}

// Put inserts or replaces the value of label.
func (r *ForecastRecord) Put(label, value string) {
	if _, exists := r.values[label]; !exists {
		r.labels = append(r.labels, label)
	}
	r.values[label] = value
}

// Get returns the value of label and whether it is present.
func (r *ForecastRecord) Get(label string) (string, bool) {
	value, ok := r.values[label]
	return value, ok
}

// Labels returns the labels in insertion order.
func (r *ForecastRecord) Labels() []string {
	labels := make([]string, len(r.labels))
	copy(labels, r.labels)
	return labels
}

func (r *ForecastRecord) Len() int {
	return len(r.labels)
}

// Entries returns the (label, value) pairs in insertion order.
func (r *ForecastRecord) Entries() []ForecastEntry {
	entries := make([]ForecastEntry, 0, len(r.labels))
	for _, label := range r.labels {
		entries = append(entries, ForecastEntry{Label: label, Value: r.values[label]})
	}
	return entries
}

// ForecastEntry is one label/value pair of a ForecastRecord.
type ForecastEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MarshalJSON renders the record as a JSON object whose keys keep insertion order.
func (r *ForecastRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range r.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(r.values[label])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// HourlyForecast is the record of a single forecast date and time.
type HourlyForecast struct {
	FcstDate string          `json:"fcstDate"`
	FcstTime string          `json:"fcstTime"`
	Record   *ForecastRecord `json:"record"`
}

// PlaceQuery is the three level address a forecast was requested for.
type PlaceQuery struct {
	Province     string `json:"province"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
}

// ForecastResponse is the body of a single record forecast. Exactly one of Place and
// Coordinate is set, echoing the selector of the request.
type ForecastResponse struct {
	Place      *PlaceQuery     `json:"place,omitempty"`
	Coordinate *Coordinate     `json:"coordinate,omitempty"`
	Forecast   *ForecastRecord `json:"forecast"`
}

// HourlyForecastResponse is the body of an hourly forecast.
type HourlyForecastResponse struct {
	Place      *PlaceQuery      `json:"place,omitempty"`
	Coordinate Coordinate       `json:"coordinate"`
	Hours      []HourlyForecast `json:"hours"`
}
