package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// decodeBody unmarshals a stored JSON body into a value of type V.
func decodeBody[V any](body string) (V, error) {
	var v V
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return v, fmt.Errorf("decoding stored body: %w", err)
	}
	return v, nil
}

// encodeBody marshals v for storage in a TEXT column.
func encodeBody(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding body: %w", err)
	}
	return string(b), nil
}

// affectedOrNotFound converts a zero-row write into notFoundErr.
func affectedOrNotFound(res sql.Result, notFoundErr error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return notFoundErr
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
