package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

// collectOne scans a single row positionally into T.
// Returns (nil, nil) when the query produced no rows.
func collectOne[T any](rows pgx.Rows, err error) (*T, error) {
	if err != nil {
		return nil, err
	}

	v, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByPos[T])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

// collectAll scans every row positionally into T. An empty result is a
// non-nil empty slice so it encodes as [] rather than null.
func collectAll[T any](rows pgx.Rows, err error) ([]T, error) {
	if err != nil {
		return nil, err
	}

	out, err := pgx.CollectRows(rows, pgx.RowToStructByPos[T])
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}
