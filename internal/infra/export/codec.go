// Package export serializes timer history and hands it to an export target.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/runoshun/timers/internal/domain"
)

// Codec implements domain.HistoryEncoder with Encode.
type Codec struct{}

var _ domain.HistoryEncoder = Codec{}

// Encode calls the package-level Encode.
func (Codec) Encode(format domain.ExportFormat, history []domain.HistoryRecord) ([]byte, error) {
	return Encode(format, history)
}

// Encode serializes history in the given format. JSON is indented by two
// spaces; an empty history encodes as an empty list.
func Encode(format domain.ExportFormat, history []domain.HistoryRecord) ([]byte, error) {
	if history == nil {
		history = []domain.HistoryRecord{}
	}

	switch format {
	case domain.ExportFormatJSON:
		data, err := json.MarshalIndent(history, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal history json: %w", err)
		}
		return data, nil

	case domain.ExportFormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(history); err != nil {
			return nil, fmt.Errorf("marshal history yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("marshal history yaml: %w", err)
		}
		return buf.Bytes(), nil
	}

	return nil, fmt.Errorf("%w: %q", domain.ErrInvalidExportFormat, format)
}

// Decode parses data produced by Encode.
func Decode(format domain.ExportFormat, data []byte) ([]domain.HistoryRecord, error) {
	var history []domain.HistoryRecord

	switch format {
	case domain.ExportFormatJSON:
		if err := json.Unmarshal(data, &history); err != nil {
			return nil, fmt.Errorf("parse history json: %w", err)
		}
	case domain.ExportFormatYAML:
		if err := yaml.Unmarshal(data, &history); err != nil {
			return nil, fmt.Errorf("parse history yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidExportFormat, format)
	}

	return history, nil
}
