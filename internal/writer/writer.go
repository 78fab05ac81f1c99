// Package writer persists the cleaned survey table.
package writer

import "surveyclean/internal/models"

// TableWriter is the interface any output backend must satisfy.
type TableWriter interface {
	Write(records []models.Record) error
	Close() error
}
