package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/timers/internal/domain"
)

// ExportHistoryInput contains the parameters for exporting history.
type ExportHistoryInput struct {
	Format domain.ExportFormat // json or yaml (empty = json)
}

// ExportHistoryOutput contains the result of an export.
type ExportHistoryOutput struct {
	Location string // Where the export went (empty when not exported)
	Records  int    // Number of exported records
	Exported bool   // False when the exporter failed; the failure is only logged
}

// ExportHistory serializes the history and hands it to the exporter.
type ExportHistory struct {
	store    domain.TimerStore
	encoder  domain.HistoryEncoder
	exporter domain.Exporter
	logger   domain.Logger
}

// NewExportHistory creates a new ExportHistory use case.
func NewExportHistory(store domain.TimerStore, encoder domain.HistoryEncoder, exporter domain.Exporter, logger domain.Logger) *ExportHistory {
	return &ExportHistory{
		store:    store,
		encoder:  encoder,
		exporter: exporter,
		logger:   logger,
	}
}

// Execute exports the whole history. An invalid format is an error; a failing
// exporter is not.
func (uc *ExportHistory) Execute(ctx context.Context, in ExportHistoryInput) (*ExportHistoryOutput, error) {
	format := in.Format
	if format == "" {
		format = domain.ExportFormatJSON
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidExportFormat, format)
	}

	history := uc.store.Snapshot().History
	data, err := uc.encoder.Encode(format, history)
	if err != nil {
		return nil, fmt.Errorf("encode history: %w", err)
	}

	location, err := uc.exporter.Export(ctx, domain.ExportRequest{
		Data:     data,
		Title:    domain.ExportTitle,
		Message:  domain.ExportMessage,
		Filename: format.Filename(),
		MimeType: format.MimeType(),
	})
	if err != nil {
		if uc.logger != nil {
			uc.logger.Warn("", "export", fmt.Sprintf("%v: %v", domain.ErrExportFailed, err))
		}
		return &ExportHistoryOutput{Records: len(history)}, nil
	}

	if uc.logger != nil {
		uc.logger.Info("", "export", fmt.Sprintf("exported %d record(s) to %s", len(history), location))
	}
	return &ExportHistoryOutput{Location: location, Records: len(history), Exported: true}, nil
}
