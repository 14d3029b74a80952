package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // postgres driver
	"github.com/perfdeck/perfdeck/internal/domain/model"
)

// Default query limits.
const (
	defaultMaxRows = 50_000
)

// PostgresSource resolves queries against the platform's measurement
// tables.
type PostgresSource struct {
	db      *sqlx.DB
	maxRows int
}

// NewPostgresSource connects to the given DSN and verifies the
// connection.
func NewPostgresSource(dsn string, opts ...PostgresOption) (*PostgresSource, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	s := &PostgresSource{
		db:      db,
		maxRows: defaultMaxRows,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Close releases the underlying connection pool.
func (s *PostgresSource) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("close postgres: %w", err)
	}
	return nil
}

// rowRecord is the scan target for measurement rows. Nullable columns map
// to sql.Null types; the normalizer repairs whatever comes out.
type rowRecord struct {
	MeasurementID string         `db:"measurement_id"`
	AthleteID     string         `db:"athlete_id"`
	AthleteName   sql.NullString `db:"athlete_name"`
	TeamID        sql.NullString `db:"team_id"`
	TeamName      sql.NullString `db:"team_name"`
	Gender        sql.NullString `db:"gender"`
	BirthYear     sql.NullInt64  `db:"birth_year"`
	Metric        string         `db:"metric"`
	Value         sql.NullString `db:"value"`
	Date          string         `db:"measured_on"`
	Verified      bool           `db:"verified"`
}

const selectRows = `
SELECT m.id            AS measurement_id,
       m.athlete_id    AS athlete_id,
       a.full_name     AS athlete_name,
       a.team_id       AS team_id,
       t.name          AS team_name,
       a.gender        AS gender,
       a.birth_year    AS birth_year,
       m.metric        AS metric,
       m.value::text   AS value,
       to_char(m.measured_on, 'YYYY-MM-DD') AS measured_on,
       m.verified      AS verified
  FROM measurements m
  JOIN athletes a ON a.id = m.athlete_id
  LEFT JOIN teams t ON t.id = a.team_id`

const selectCounts = `
SELECT m.metric AS metric, COUNT(*) AS n
  FROM measurements m
  JOIN athletes a ON a.id = m.athlete_id`

// Rows resolves the query into raw rows, applying every filter including
// the date window.
func (s *PostgresSource) Rows(ctx context.Context, q Query) ([]model.RawRow, error) {
	where, args := buildConditions(q, true)
	query := selectRows + where + " ORDER BY m.measured_on, m.id LIMIT ?"
	args = append(args, s.maxRows)

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build rows query: %w", err)
	}

	var records []rowRecord
	if err := s.db.SelectContext(ctx, &records, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query measurement rows: %w", err)
	}

	rows := make([]model.RawRow, len(records))
	for i, r := range records {
		rows[i] = model.RawRow{
			MeasurementID: r.MeasurementID,
			AthleteID:     r.AthleteID,
			AthleteName:   r.AthleteName.String,
			TeamID:        r.TeamID.String,
			TeamName:      r.TeamName.String,
			Gender:        r.Gender.String,
			BirthYear:     int(r.BirthYear.Int64),
			Metric:        r.Metric,
			Value:         r.Value.String,
			Date:          r.Date,
			Verified:      r.Verified,
		}
	}
	return rows, nil
}

// AvailabilityCounts returns per-metric counts with the date window
// deliberately ignored.
func (s *PostgresSource) AvailabilityCounts(ctx context.Context, q Query) (map[string]int, error) {
	where, args := buildConditions(q, false)
	query := selectCounts + where + " GROUP BY m.metric"

	query, args, err := sqlx.In(query, args...)
	if err != nil {
		return nil, fmt.Errorf("build counts query: %w", err)
	}

	var records []struct {
		Metric string `db:"metric"`
		N      int    `db:"n"`
	}
	if err := s.db.SelectContext(ctx, &records, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("query availability counts: %w", err)
	}

	counts := make(map[string]int, len(records))
	for _, r := range records {
		counts[r.Metric] = r.N
	}
	return counts, nil
}

// buildConditions assembles the WHERE clause shared by both queries. The
// date window only applies when withDates is set.
func buildConditions(q Query, withDates bool) (string, []any) {
	conds := []string{"a.organization_id = ?"}
	args := []any{q.OrganizationID}

	if len(q.Metrics) > 0 {
		conds = append(conds, "m.metric IN (?)")
		args = append(args, q.Metrics)
	}
	if len(q.Teams) > 0 {
		conds = append(conds, "t.name IN (?)")
		args = append(args, q.Teams)
	}
	if len(q.Genders) > 0 {
		conds = append(conds, "a.gender IN (?)")
		args = append(args, q.Genders)
	}
	if len(q.AthleteIDs) > 0 {
		conds = append(conds, "m.athlete_id IN (?)")
		args = append(args, q.AthleteIDs)
	}
	if q.BirthYearFrom > 0 {
		conds = append(conds, "a.birth_year >= ?")
		args = append(args, q.BirthYearFrom)
	}
	if q.BirthYearTo > 0 {
		conds = append(conds, "a.birth_year <= ?")
		args = append(args, q.BirthYearTo)
	}
	if q.VerifiedOnly {
		conds = append(conds, "m.verified = TRUE")
	}
	if withDates && q.windowed() {
		if !q.Start.IsZero() {
			conds = append(conds, "m.measured_on >= ?")
			args = append(args, q.Start)
		}
		if !q.End.IsZero() {
			conds = append(conds, "m.measured_on <= ?")
			args = append(args, q.End)
		}
	}

	return "\n WHERE " + strings.Join(conds, "\n   AND "), args
}
