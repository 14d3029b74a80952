// Package model contains domain models passed between layers.
package model

// RawRow mirrors the row contract of the measurement data layer. Value is
// intentionally untyped: upstream storage delivers numbers, numeric
// strings, and occasionally garbage, all of which the normalizer coerces.
type RawRow struct {
	MeasurementID string
	AthleteID     string
	AthleteName   string
	TeamID        string
	TeamName      string
	Gender        string
	BirthYear     int
	Metric        string
	Value         any
	Date          string // ISO calendar date, YYYY-MM-DD
	Verified      bool
}
