package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

var (
	dayRule   = color.New(color.FgRed).SprintFunc()
	dayStamp  = color.New(color.FgGreen, color.Bold).SprintFunc()
	timeStamp = color.New(color.FgGreen, color.Bold).SprintFunc()
	actor     = color.New(color.FgBlue, color.Bold).SprintFunc()
	category  = color.New(color.FgRed, color.Bold).SprintFunc()
	link      = color.New(color.FgBlue).SprintFunc()
)

// Text renders the timeline as a day-grouped terminal feed.
type Text struct {
	Out io.Writer

	// Wrap is the column width event bodies are wrapped to.
	Wrap uint
	// Lines caps the wrapped body lines printed per event; 0 prints all.
	Lines int
}

func NewText(out io.Writer, wrap uint, lines int) *Text {
	if wrap == 0 {
		wrap = 80
	}
	return &Text{Out: out, Wrap: wrap, Lines: lines}
}

// Render walks the sorted events once. The day of the last printed event is
// threaded through the pass; it starts empty so the first event always opens
// a new day.
func (t *Text) Render(events []timeline.Event) error {
	day := ""

	for _, event := range events {
		current := event.When.Format("2006-01-02")
		if current != day {
			if _, err := fmt.Fprintf(t.Out, "\n%s %s %s\n",
				dayRule("----------"), dayStamp(current), dayRule("---------")); err != nil {
				return err
			}
			day = current
		}

		if _, err := fmt.Fprintf(t.Out, "\n%s %s %s\n%s\n",
			timeStamp(event.When.Format("15:04")),
			actor(event.Who),
			category(event.Category),
			link(event.URL)); err != nil {
			return err
		}

		for _, line := range t.wrapBody(event.What) {
			if _, err := fmt.Fprintf(t.Out, "\t%s\n", line); err != nil {
				return err
			}
		}
	}

	return nil
}

func (t *Text) wrapBody(body string) []string {
	if body == "" {
		return nil
	}

	lines := strings.Split(wordwrap.WrapString(body, t.Wrap), "\n")
	if t.Lines > 0 && t.Lines < len(lines) {
		lines = lines[:t.Lines]
	}
	return lines
}
