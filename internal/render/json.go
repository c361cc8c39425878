package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

// record is the wire form of one event in the JSON document.
type record struct {
	URL      string `json:"url"`
	When     string `json:"when"`
	Who      string `json:"who"`
	Category string `json:"category"`
	What     string `json:"what"`
}

// JSON renders the timeline as a single array of objects, untruncated and
// unwrapped, preserving chronological order.
type JSON struct {
	Out io.Writer
}

func NewJSON(out io.Writer) *JSON {
	return &JSON{Out: out}
}

func (j *JSON) Render(events []timeline.Event) error {
	records := make([]record, 0, len(events))
	for _, event := range events {
		records = append(records, record{
			URL:      event.URL,
			When:     event.When.UTC().Format(time.RFC3339),
			Who:      event.Who,
			Category: event.Category,
			What:     event.What,
		})
	}

	enc := json.NewEncoder(j.Out)
	return enc.Encode(records)
}
