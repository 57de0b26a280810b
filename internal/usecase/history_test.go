package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/infra/export"
	"github.com/runoshun/timers/internal/testutil"
	"github.com/runoshun/timers/internal/usecase"
)

func TestShowHistory_Execute(t *testing.T) {
	s, clock := newTestStore(t,
		timer("1", "Tea", "Kitchen", 60),
		timer("2", "Focus", "Work", 1500),
	)
	s.Dispatch(domain.CompleteTimer("1"))
	clock.Advance(24 * time.Hour)
	s.Dispatch(domain.CompleteTimer("2"))

	out, err := usecase.NewShowHistory(s).Execute(context.Background(), usecase.ShowHistoryInput{Location: time.UTC})

	require.NoError(t, err)
	assert.Equal(t, 2, out.Total)
	require.Len(t, out.Groups, 2)
	assert.Equal(t, "2025-03-15", out.Groups[0].Title())
	assert.Equal(t, "2", out.Groups[0].Records[0].ID)
	assert.Equal(t, "2025-03-14", out.Groups[1].Title())
}

func TestShowHistory_Empty(t *testing.T) {
	s, _ := newTestStore(t)

	out, err := usecase.NewShowHistory(s).Execute(context.Background(), usecase.ShowHistoryInput{})

	require.NoError(t, err)
	assert.Zero(t, out.Total)
	assert.Empty(t, out.Groups)
}

func TestExportHistory_Execute(t *testing.T) {
	ctx := context.Background()
	newStore := func(t *testing.T) domain.TimerStore {
		s, _ := newTestStore(t, timer("1", "Tea", "Kitchen", 60))
		s.Dispatch(domain.CompleteTimer("1"))
		return s
	}

	t.Run("json by default", func(t *testing.T) {
		exporter := &testutil.MockExporter{Location: "/tmp/timer-history.json"}
		uc := usecase.NewExportHistory(newStore(t), export.Codec{}, exporter, nil)

		out, err := uc.Execute(ctx, usecase.ExportHistoryInput{})

		require.NoError(t, err)
		assert.True(t, out.Exported)
		assert.Equal(t, 1, out.Records)
		assert.Equal(t, "/tmp/timer-history.json", out.Location)
		require.Len(t, exporter.Requests, 1)
		req := exporter.Requests[0]
		assert.Equal(t, "Export Timer History", req.Title)
		assert.Equal(t, "timer-history.json", req.Filename)
		assert.Equal(t, "application/json", req.MimeType)

		decoded, err := export.Decode(domain.ExportFormatJSON, req.Data)
		require.NoError(t, err)
		require.Len(t, decoded, 1)
		assert.Equal(t, "Tea", decoded[0].Name)
	})

	t.Run("yaml", func(t *testing.T) {
		exporter := &testutil.MockExporter{}
		uc := usecase.NewExportHistory(newStore(t), export.Codec{}, exporter, nil)

		_, err := uc.Execute(ctx, usecase.ExportHistoryInput{Format: domain.ExportFormatYAML})

		require.NoError(t, err)
		require.Len(t, exporter.Requests, 1)
		assert.Equal(t, "timer-history.yaml", exporter.Requests[0].Filename)
	})

	t.Run("exporter failure is logged and swallowed", func(t *testing.T) {
		exporter := &testutil.MockExporter{Err: errors.New("share sheet dismissed")}
		logger := &testutil.MockLogger{}
		uc := usecase.NewExportHistory(newStore(t), export.Codec{}, exporter, logger)

		out, err := uc.Execute(ctx, usecase.ExportHistoryInput{})

		require.NoError(t, err)
		assert.False(t, out.Exported)
		assert.Empty(t, out.Location)
		assert.True(t, logger.HasLevel("warn"))
	})

	t.Run("invalid format", func(t *testing.T) {
		exporter := &testutil.MockExporter{}
		uc := usecase.NewExportHistory(newStore(t), export.Codec{}, exporter, nil)

		_, err := uc.Execute(ctx, usecase.ExportHistoryInput{Format: "csv"})

		assert.ErrorIs(t, err, domain.ErrInvalidExportFormat)
		assert.Empty(t, exporter.Requests)
	})
}
