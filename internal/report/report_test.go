package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexhour/lexhour/internal/duration"
	"github.com/lexhour/lexhour/internal/model"
	"github.com/lexhour/lexhour/internal/report"
)

func entry(t *testing.T, client, matter, dur string) model.TimeEntry {
	t.Helper()
	d, err := duration.Parse(dur)
	require.NoError(t, err)
	return model.TimeEntry{Date: "2024-01-15", Client: client, Matter: matter, Duration: d}
}

func TestTotalHours(t *testing.T) {
	assert.InDelta(t, 0.0, report.TotalHours(nil), 1e-9)

	entries := []model.TimeEntry{
		entry(t, "A", "X", "01:30"),
		entry(t, "B", "Y", "00:45"),
	}
	assert.InDelta(t, 2.25, report.TotalHours(entries), 1e-9)
}

func TestByClient(t *testing.T) {
	entries := []model.TimeEntry{
		entry(t, "A", "X", "01:00"),
		entry(t, "A", "Y", "02:00"),
		entry(t, "B", "X", "00:30"),
	}

	got := report.ByClient(entries)
	require.Len(t, got, 2)
	assert.InDelta(t, 3.0, got["A"], 1e-9)
	assert.InDelta(t, 0.5, got["B"], 1e-9)
}

func TestByClientMatter(t *testing.T) {
	entries := []model.TimeEntry{
		entry(t, "A", "X", "01:00"),
		entry(t, "A", "X", "00:30"),
		entry(t, "A", "Y", "02:00"),
		entry(t, "B", "X", "00:30"),
	}

	got := report.ByClientMatter(entries)
	require.Len(t, got, 3)
	assert.InDelta(t, 1.5, got[report.ClientMatter{Client: "A", Matter: "X"}], 1e-9)
	assert.InDelta(t, 2.0, got[report.ClientMatter{Client: "A", Matter: "Y"}], 1e-9)
	assert.InDelta(t, 0.5, got[report.ClientMatter{Client: "B", Matter: "X"}], 1e-9)
}

func TestByClientEmpty(t *testing.T) {
	assert.Empty(t, report.ByClient(nil))
	assert.Empty(t, report.ByClientMatter(nil))
}
