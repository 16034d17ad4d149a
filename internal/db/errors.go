package db

import "errors"

// ErrNoRows is returned when the suggestion table holds no rows.
var ErrNoRows = errors.New("suggestion table is empty")
