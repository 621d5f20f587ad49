package types

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSearchRadiusM is used when a request does not specify a radius.
const DefaultSearchRadiusM = 350

// SceneInput carries the raw, already-validated request values a Scene is built from.
// A zero LocalTime means "resolve from the coordinate".
type SceneInput struct {
	Lat          float64
	Lon          float64
	City         string
	District     string
	TemperatureC float64
	Sky          string
	HumidityPct  int
	RadiusM      int
	LocalTime    time.Time
}

// Scene is the snapshot of location, time and weather that drives one prompt.
// It is built once per request and never modified afterwards.
type Scene struct {
	ID           uuid.UUID `json:"id"`
	Lat          float64   `json:"lat"`
	Lon          float64   `json:"lon"`
	City         string    `json:"city"`
	District     string    `json:"district"`
	TemperatureC float64   `json:"temperature_c"`
	Sky          string    `json:"sky"`
	HumidityPct  int       `json:"humidity_pct"`
	RadiusM      int       `json:"radius_m"`
	LocalTime    time.Time `json:"local_time"`
}
