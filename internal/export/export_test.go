package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"testing"
	"time"

	"tasklists/internal/api"
	"tasklists/internal/domain"
	"tasklists/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSnapshot() *api.ListSnapshot {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return &api.ListSnapshot{
		List: domain.TaskList{ID: 1, Name: "Home"},
		Pending: api.SectionSnapshot{Title: "CURRENT TASKS", Tasks: []*domain.Task{
			{ID: 1, ListID: 1, Name: "Dishes", Note: "after dinner", CreatedAt: ts, UpdatedAt: ts},
			{ID: 2, ListID: 1, Name: "Laundry, whites", CreatedAt: ts, UpdatedAt: ts},
		}},
		Completed: api.SectionSnapshot{Title: "COMPLETED TASKS", Tasks: []*domain.Task{
			{ID: 3, ListID: 1, Name: "Vacuum", IsComplete: true, CreatedAt: ts, UpdatedAt: ts},
		}},
	}
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), "csv"))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{"Home", "current", "0", "1", "Dishes", "after dinner", "false",
		"2024-03-01T09:30:00Z", "2024-03-01T09:30:00Z"}, records[1])
	assert.Equal(t, "Laundry, whites", records[2][4])
	assert.Equal(t, []string{"completed", "0", "3", "Vacuum"}, records[3][1:5])
	assert.Equal(t, "true", records[3][6])
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), "JSON"))

	var doc jsonDocument
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "Home", doc.List)
	require.Len(t, doc.Sections, 2)
	assert.Equal(t, "CURRENT TASKS", doc.Sections[0].Title)
	assert.Len(t, doc.Sections[0].Tasks, 2)
	assert.Equal(t, "Vacuum", doc.Sections[1].Tasks[0].Name)
	assert.True(t, doc.Sections[1].Tasks[0].Complete)
	assert.NotContains(t, buf.String(), `"note": ""`)
}

func TestWrite_PDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleSnapshot(), "pdf"))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestWrite_EmptyList(t *testing.T) {
	snap := &api.ListSnapshot{List: domain.TaskList{Name: "Empty"}}

	for _, format := range Formats {
		var buf bytes.Buffer
		assert.NoError(t, Write(&buf, snap, format), format)
		assert.NotZero(t, buf.Len(), format)
	}
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, sampleSnapshot(), "xml")

	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
	assert.Contains(t, err.Error(), "unsupported format")
	assert.Zero(t, buf.Len())
}
