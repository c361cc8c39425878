package render

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

func TestExcel_WritesTimelineSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "timeline.xlsx")

	events := []timeline.Event{
		{
			Who:      "alice",
			When:     time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			Category: "OPEN 1",
			What:     "A",
			URL:      "https://github.com/acme/widgets/issues/1",
		},
		{
			Who:      "bob",
			When:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Category: "comment 1",
			What:     "c",
			URL:      "https://github.com/acme/widgets/issues/1#issuecomment-1",
		},
	}

	require.NoError(t, NewExcel(path).Render(events))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Timeline")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, []string{"When", "Who", "Category", "What", "URL"}, rows[0])
	require.Equal(t, "alice", rows[1][1])
	require.Equal(t, "OPEN 1", rows[1][2])
	require.Equal(t, "comment 1", rows[2][2])
}
