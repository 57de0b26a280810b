package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/timers/internal/domain"
	"github.com/runoshun/timers/internal/usecase"
)

func groupIDs(g usecase.TimerGroup) []string {
	ids := make([]string, 0, len(g.Timers))
	for _, t := range g.Timers {
		ids = append(ids, t.ID)
	}
	return ids
}

func TestListTimers_Execute(t *testing.T) {
	s, _ := newTestStore(t,
		timer("1", "tea", "Kitchen", 60),
		timer("2", "Focus", "Work", 1500),
		timer("3", "Eggs", "Kitchen", 300),
		timer("4", "Bread", "Kitchen", 900),
	)
	s.Dispatch(domain.CompleteTimer("4"))
	uc := usecase.NewListTimers(s)

	t.Run("all categories", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.ListTimersInput{})
		require.NoError(t, err)

		assert.Equal(t, []string{"Kitchen", "Work"}, out.Categories)
		require.Len(t, out.Groups, 2)
		assert.Equal(t, "Kitchen", out.Groups[0].Category)
		// Incomplete first, then case-insensitive by name.
		assert.Equal(t, []string{"3", "1", "4"}, groupIDs(out.Groups[0]))
		assert.Equal(t, 2, out.Groups[0].Plan.Incomplete)
		assert.True(t, out.Groups[0].Plan.ShowControls())
	})

	t.Run("category filter", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.ListTimersInput{Categories: []string{" Work "}})
		require.NoError(t, err)

		assert.Equal(t, []string{"Kitchen", "Work"}, out.Categories, "filter does not hide categories")
		require.Len(t, out.Groups, 1)
		assert.Equal(t, "Work", out.Groups[0].Category)
	})

	t.Run("unknown category", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), usecase.ListTimersInput{Categories: []string{"Garden"}})
		require.NoError(t, err)
		assert.Empty(t, out.Groups)
	})
}
