package render

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

func init() {
	color.NoColor = true
}

func at(day, hhmm string) time.Time {
	t, err := time.Parse(time.RFC3339, day+"T"+hhmm+":00Z")
	if err != nil {
		panic(err)
	}
	return t
}

func renderText(t *testing.T, events []timeline.Event, wrap uint, lines int) string {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, NewText(&buf, wrap, lines).Render(events))
	return buf.String()
}

func TestText_DaySeparatorPrintedOncePerDay(t *testing.T) {
	events := []timeline.Event{
		{Who: "alice", When: at("2024-01-01", "10:00"), Category: "OPEN 1", URL: "u1"},
		{Who: "bob", When: at("2024-01-01", "12:00"), Category: "comment 1", URL: "u2"},
		{Who: "alice", When: at("2024-01-02", "09:00"), Category: "OPEN 2", URL: "u3"},
	}

	out := renderText(t, events, 80, 0)

	require.Equal(t, 1, strings.Count(out, "2024-01-01"))
	require.Equal(t, 1, strings.Count(out, "2024-01-02"))
	require.Equal(t, 2, strings.Count(out, "---------- "))

	// Ascending day order.
	require.Less(t, strings.Index(out, "2024-01-01"), strings.Index(out, "2024-01-02"))
}

func TestText_HeaderLine(t *testing.T) {
	events := []timeline.Event{
		{Who: "alice", When: at("2024-01-01", "10:05"), Category: "CLOSED 3", URL: "https://example.com/3"},
	}

	out := renderText(t, events, 80, 0)

	require.Contains(t, out, "\n10:05 alice CLOSED 3\nhttps://example.com/3\n")
}

func TestText_BodyWrappedAndIndented(t *testing.T) {
	events := []timeline.Event{
		{Who: "a", When: at("2024-01-01", "10:00"), Category: "OPEN 1", URL: "u",
			What: "one two three four five six"},
	}

	out := renderText(t, events, 10, 0)

	for _, line := range []string{"\tone two\n", "\tthree four\n", "\tfive six\n"} {
		require.Contains(t, out, line)
	}
}

func TestText_LineLimit(t *testing.T) {
	body := "alpha beta gamma delta epsilon zeta eta theta"
	event := timeline.Event{Who: "a", When: at("2024-01-01", "10:00"), Category: "OPEN 1", URL: "u", What: body}

	all := renderText(t, []timeline.Event{event}, 12, 0)
	total := strings.Count(all, "\t")
	require.Greater(t, total, 2)

	limited := renderText(t, []timeline.Event{event}, 12, 2)
	require.Equal(t, 2, strings.Count(limited, "\t"))

	// A limit at or above the wrapped line count prints everything.
	generous := renderText(t, []timeline.Event{event}, 12, total+5)
	require.Equal(t, total, strings.Count(generous, "\t"))
}

func TestText_EmptyBodyPrintsNothing(t *testing.T) {
	events := []timeline.Event{
		{Who: "a", When: at("2024-01-01", "10:00"), Category: "OPEN 1", URL: "u", What: ""},
	}

	out := renderText(t, events, 80, 0)
	require.NotContains(t, out, "\t")
}

func TestText_NoEvents(t *testing.T) {
	out := renderText(t, nil, 80, 0)
	require.Empty(t, out)
}
