package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarrotes/pos/internal/report"
)

func TestExporter_PDF(t *testing.T) {
	e := NewExporter(report.NewStaticProvider())

	file, err := e.Export(FormatPDF, report.PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, "reporte-ventas.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.ContentType)
	require.NotEmpty(t, file.Data)
	assert.Equal(t, "%PDF", string(file.Data[:4]))
}

func TestExporter_Excel(t *testing.T) {
	e := NewExporter(report.NewStaticProvider())

	file, err := e.Export(FormatExcel, report.PeriodDay)
	require.NoError(t, err)
	assert.Equal(t, "reporte-ventas.xlsx", file.Name)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", file.ContentType)
	require.NotEmpty(t, file.Data)
	// xlsx is a zip archive
	assert.Equal(t, []byte{'P', 'K'}, file.Data[:2])
}

func TestExporter_UnknownFormat(t *testing.T) {
	e := NewExporter(report.NewStaticProvider())

	_, err := e.Export("csv", report.PeriodDay)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestExporter_UnknownPeriod(t *testing.T) {
	e := NewExporter(report.NewStaticProvider())

	_, err := e.Export(FormatPDF, "ayer")
	assert.ErrorIs(t, err, report.ErrUnknownPeriod)
}
