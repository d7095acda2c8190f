package sheetsclient

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakechorley/shift-rota/pkg/core/allocator"
	"github.com/jakechorley/shift-rota/pkg/core/model"
	"github.com/jakechorley/shift-rota/pkg/report"
)

func mustDay(t *testing.T, s string) model.Day {
	t.Helper()
	d, err := model.ParseDay(s)
	require.NoError(t, err)
	return d
}

func TestGenerateTabTitle(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  string
	}{
		{
			name:  "single day",
			start: "2025-01-06",
			end:   "2025-01-06",
			want:  "06/01/2025 - 06/01/2025",
		},
		{
			name:  "one week",
			start: "2025-01-06",
			end:   "2025-01-12",
			want:  "06/01/2025 - 12/01/2025",
		},
		{
			name:  "across year end",
			start: "2024-12-30",
			end:   "2025-01-26",
			want:  "30/12/2024 - 26/01/2025",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateTabTitle(mustDay(t, tt.start), mustDay(t, tt.end)))
		})
	}
}

func TestPublishedRows(t *testing.T) {
	start := mustDay(t, "2025-01-06")
	schedule := &allocator.Schedule{
		Start: start,
		End:   start.AddDays(1),
		Days: []allocator.DaySchedule{
			{Day: start, Morning: "Ana", Afternoon: "Bruno"},
			{Day: start.AddDays(1), Morning: "Bruno", Afternoon: allocator.Uncovered},
		},
	}
	stats := allocator.Summarize(schedule)

	rows := publishedRows(schedule, stats)

	// header + 2 days + blank + header + 2 people + TOTAL
	require.Len(t, rows, 8)
	assert.Equal(t, report.ScheduleHeader, rows[0])
	assert.Equal(t, []interface{}{"06/01/2025", "Segunda", "Ana", "Bruno"}, rows[1])
	assert.Equal(t, []interface{}{"07/01/2025", "Terça", "Bruno", report.UncoveredLabel}, rows[2])
	assert.Empty(t, rows[3])
	assert.Equal(t, report.StatisticsHeader, rows[4])
	assert.Equal(t, "Ana", rows[5][0])
	assert.Equal(t, "Bruno", rows[6][0])
	assert.Equal(t, allocator.TotalRowName, rows[7][0])
}

func TestToStrings(t *testing.T) {
	values := [][]interface{}{
		{"Data", " Ana ", "Bruno"},
		{45663.0, "FOLGA"},
		{"2025-01-07", nil, "FERIAS"},
		{},
	}

	got := toStrings(values)

	assert.Equal(t, [][]string{
		{"Data", "Ana", "Bruno"},
		{"45663", "FOLGA"},
		{"2025-01-07", "", "FERIAS"},
		{},
	}, got)
}

func TestQuoteRange(t *testing.T) {
	assert.Equal(t, "'06/01/2025 - 12/01/2025'", quoteRange("06/01/2025 - 12/01/2025"))
}
