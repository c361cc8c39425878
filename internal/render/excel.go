package render

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Afrawles/ghtimeline/internal/timeline"
)

const timelineSheet = "Timeline"

// Excel writes the timeline to an .xlsx workbook with one row per event.
type Excel struct {
	Path string
}

func NewExcel(path string) *Excel {
	return &Excel{Path: path}
}

func (e *Excel) Render(events []timeline.Event) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(timelineSheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)

	header := []any{"When", "Who", "Category", "What", "URL"}
	if err := f.SetSheetRow(timelineSheet, "A1", &header); err != nil {
		return err
	}

	for i, event := range events {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{
			event.When.UTC().Format("2006-01-02 15:04"),
			event.Who,
			event.Category,
			event.What,
			event.URL,
		}
		if err := f.SetSheetRow(timelineSheet, cell, &row); err != nil {
			return err
		}
	}

	_ = f.SetColWidth(timelineSheet, "A", "A", 18)
	_ = f.SetColWidth(timelineSheet, "B", "C", 16)
	_ = f.SetColWidth(timelineSheet, "D", "E", 60)

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	if err := f.SaveAs(e.Path); err != nil {
		return fmt.Errorf("failed to save excel file: %w", err)
	}

	return nil
}
