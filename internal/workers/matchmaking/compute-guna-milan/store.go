// internal/workers/matchmaking/compute-guna-milan/store.go
package computegunamilan

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"

	"guna-milan-workers/internal/common/errors"
	"guna-milan-workers/internal/gunamilan"
)

// ChartStore resolves a chart ID to the data the engine needs.
type ChartStore interface {
	GetChart(ctx context.Context, chartID string) (*gunamilan.PersonInput, error)
}

const chartQuery = `SELECT birth_details, astro_details, planets, manglik FROM birth_charts WHERE id = $1`

// PostgresChartStore reads charts from the birth_charts table. JSON columns may be NULL.
type PostgresChartStore struct {
	db *sql.DB
}

func NewPostgresChartStore(db *sql.DB) *PostgresChartStore {
	return &PostgresChartStore{db: db}
}

func (s *PostgresChartStore) GetChart(ctx context.Context, chartID string) (*gunamilan.PersonInput, error) {
	var (
		birthDetails, astroDetails, planets []byte
		manglik                             sql.NullBool
	)

	err := s.db.QueryRowContext(ctx, chartQuery, chartID).
		Scan(&birthDetails, &astroDetails, &planets, &manglik)
	switch {
	case stderrors.Is(err, sql.ErrNoRows):
		return nil, errors.NewChartNotFoundError(chartID)
	case stderrors.Is(err, context.DeadlineExceeded), err != nil && stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		return nil, errors.NewChartLookupTimeoutError(chartID)
	case err != nil:
		return nil, errors.NewChartLookupFailedError(chartID, err)
	}

	chart := &gunamilan.PersonInput{Manglik: manglik.Valid && manglik.Bool}
	if err := decodeColumn(birthDetails, &chart.BirthDetails); err != nil {
		return nil, errors.NewChartDecodeFailedError(chartID, "birth_details", err)
	}
	if err := decodeColumn(astroDetails, &chart.AstroDetails); err != nil {
		return nil, errors.NewChartDecodeFailedError(chartID, "astro_details", err)
	}
	if err := decodeColumn(planets, &chart.Planets); err != nil {
		return nil, errors.NewChartDecodeFailedError(chartID, "planets", err)
	}
	return chart, nil
}

func decodeColumn(raw []byte, dst interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dst)
}
