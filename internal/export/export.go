// Package export writes a task list snapshot as csv, json or pdf.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tasklists/internal/api"
	"tasklists/internal/domain"
	"tasklists/internal/errors"

	"github.com/jung-kurt/gofpdf"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// Formats lists every supported format.
var Formats = []string{FormatCSV, FormatJSON, FormatPDF}

// Write renders snap to w in the given format.
func Write(w io.Writer, snap *api.ListSnapshot, format string) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(w, snap)
	case FormatJSON:
		return writeJSON(w, snap)
	case FormatPDF:
		return writePDF(w, snap)
	default:
		return errors.NewInvalidInputError("format", format,
			fmt.Sprintf("unsupported format, use one of %s", strings.Join(Formats, ", ")))
	}
}

var csvHeader = []string{"list", "section", "row", "id", "name", "note", "complete", "created_at", "updated_at"}

func writeCSV(w io.Writer, snap *api.ListSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, section := range []struct {
		name  string
		tasks []*domain.Task
	}{
		{domain.SectionPending.String(), snap.Pending.Tasks},
		{domain.SectionCompleted.String(), snap.Completed.Tasks},
	} {
		for row, t := range section.tasks {
			record := []string{
				snap.List.Name,
				section.name,
				strconv.Itoa(row),
				strconv.FormatInt(t.ID, 10),
				t.Name,
				t.Note,
				strconv.FormatBool(t.IsComplete),
				t.CreatedAt.Format(time.RFC3339),
				t.UpdatedAt.Format(time.RFC3339),
			}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

type jsonTask struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	Complete  bool      `json:"complete"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type jsonSection struct {
	Title string     `json:"title"`
	Tasks []jsonTask `json:"tasks"`
}

type jsonDocument struct {
	List     string        `json:"list"`
	Sections []jsonSection `json:"sections"`
}

func writeJSON(w io.Writer, snap *api.ListSnapshot) error {
	doc := jsonDocument{List: snap.List.Name}
	for _, s := range snap.Sections() {
		section := jsonSection{Title: s.Title, Tasks: make([]jsonTask, 0, len(s.Tasks))}
		for _, t := range s.Tasks {
			section.Tasks = append(section.Tasks, jsonTask{
				ID:        t.ID,
				Name:      t.Name,
				Note:      t.Note,
				Complete:  t.IsComplete,
				CreatedAt: t.CreatedAt,
				UpdatedAt: t.UpdatedAt,
			})
		}
		doc.Sections = append(doc.Sections, section)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func writePDF(w io.Writer, snap *api.ListSnapshot) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(snap.List.Name))
	pdf.Ln(14)

	for _, s := range snap.Sections() {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(40, 8, tr(fmt.Sprintf("%s (%d)", s.Title, len(s.Tasks))))
		pdf.Ln(9)

		pdf.SetFont("Arial", "", 10)
		if len(s.Tasks) == 0 {
			pdf.MultiCell(0, 6, "-", "0", "L", false)
		}
		for _, t := range s.Tasks {
			mark := "[ ]"
			if t.IsComplete {
				mark = "[x]"
			}
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%s %s", mark, t.Name)), "0", "L", false)
			if t.Note != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, tr("    "+t.Note), "0", "L", false)
				pdf.SetFont("Arial", "", 10)
			}
		}
		pdf.Ln(4)
	}

	return pdf.Output(w)
}
