package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bizsite-api/internal/model"
)

func readBack(t *testing.T, f *excelize.File, sheet string) [][]string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	r, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer r.Close()
	rows, err := r.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestWorkbookEmpty(t *testing.T) {
	_, err := Workbook("appointments", nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWorkbookAppointments(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	items := []model.Appointment{
		{ID: "1", Name: "A", Phone: "1", Date: "2024-01-01", Service: "Haircut", CreatedAt: now},
		{ID: "2", Name: "B", Phone: "2", Date: "2024-01-02", Service: "Shave", CreatedAt: now},
		{ID: "3", Name: "C", Phone: "3", Date: "2024-01-03", Service: "Color", CreatedAt: now},
	}
	f, err := Workbook("appointments", Records(items))
	require.NoError(t, err)

	assert.Equal(t, "appointments", f.GetSheetName(0))
	rows := readBack(t, f, "appointments")
	require.Len(t, rows, len(items)+1)
	assert.Equal(t, []string{"NAME", "PHONE", "DATE", "SERVICE", "CREATEDAT"}, rows[0])
	assert.Equal(t, []string{"A", "1", "2024-01-01", "Haircut"}, rows[1][:4])
	assert.Equal(t, "Color", rows[3][3])
}

func TestWorkbookBlankFirstRecordKeepsColumns(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	items := []model.BlogPost{
		{ID: "1", Title: "", Date: "d1", Image: "i1", Content: "c1", CreatedAt: now},
		{ID: "2", Title: "second", Date: "d2", Image: "i2", Content: "c2", CreatedAt: now},
	}
	records := Records(items)
	assert.Equal(t, []string{"title", "date", "image", "content", "createdAt"}, Columns(records))

	f, err := Workbook("blogs", records)
	require.NoError(t, err)
	rows := readBack(t, f, "blogs")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"TITLE", "DATE", "IMAGE", "CONTENT", "CREATEDAT"}, rows[0])
	assert.Equal(t, []string{"", "d1", "i1", "c1"}, rows[1][:4])
	assert.Equal(t, []string{"second", "d2", "i2", "c2"}, rows[2][:4])
}

func TestWorkbookColumnsFromFirstRecord(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	// a record without a timestamp fixes the column set for the rest
	items := []model.BlogPost{
		{ID: "1", Title: "first", Date: "d1", Image: "i1", Content: "c1"},
		{ID: "2", Title: "second", Date: "d2", Image: "i2", Content: "c2", CreatedAt: now},
	}
	records := Records(items)
	assert.Equal(t, []string{"title", "date", "image", "content"}, Columns(records))

	f, err := Workbook("blogs", records)
	require.NoError(t, err)
	rows := readBack(t, f, "blogs")
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"TITLE", "DATE", "IMAGE", "CONTENT"}, rows[0])
	assert.Equal(t, []string{"second", "d2", "i2", "c2"}, rows[2])
}
