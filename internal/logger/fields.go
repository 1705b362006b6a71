package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldDomain is the structured log field key for the record domain (postings, matches).
	FieldDomain = "domain"
	// FieldView is the structured log field key for a named filter selection.
	FieldView = "view"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// ViewFields returns the fields identifying one filtered view of a record list.
func ViewFields(domain, view string) []zap.Field {
	return StringFields(
		StringField{Key: FieldDomain, Value: domain},
		StringField{Key: FieldView, Value: view},
	)
}

// WithView attaches the view fields to logger.
func WithView(logger *zap.Logger, domain, view string) *zap.Logger {
	return WithFields(logger, ViewFields(domain, view)...)
}
