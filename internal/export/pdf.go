package export

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/abarrotes/pos/internal/domain"
)

func renderPDF(rep *domain.SalesReport) (*File, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, tr("Reporte de Ventas"))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Periodo: %s", rep.Period)))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, tr("Resumen"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	summary := [][2]string{
		{"Ventas del día", fmt.Sprintf("$%.2f", rep.Summary.DaySales)},
		{"Transacciones", fmt.Sprintf("%d", rep.Summary.Transactions)},
		{"Productos vendidos", fmt.Sprintf("%d", rep.Summary.ItemsSold)},
		{"Productos con stock bajo", fmt.Sprintf("%d", rep.Summary.LowStockCount)},
	}
	for _, row := range summary {
		pdf.CellFormat(80, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, tr(row[1]), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, tr("Ventas por hora"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, h := range rep.Hourly {
		pdf.CellFormat(40, 7, h.Hour, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("$%.2f", h.Amount), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 11)
	pdf.Cell(0, 8, tr("Productos más vendidos"))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 10)
	for _, p := range rep.TopProducts {
		pdf.CellFormat(80, 7, tr(p.Name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%d", p.UnitsSold), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &File{
		Name:        "reporte-ventas.pdf",
		ContentType: "application/pdf",
		Data:        buf.Bytes(),
	}, nil
}
