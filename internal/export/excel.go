package export

import (
	"bytes"
	"fmt"

	"github.com/360EntSecGroup-Skylar/excelize"

	"github.com/abarrotes/pos/internal/domain"
)

func renderExcel(rep *domain.SalesReport) (*File, error) {
	f := excelize.NewFile()
	const sheet = "Sheet1"

	f.SetCellValue(sheet, "A1", "Reporte de Ventas")
	f.SetCellValue(sheet, "A2", "Periodo")
	f.SetCellValue(sheet, "B2", rep.Period)

	f.SetCellValue(sheet, "A4", "Hora")
	f.SetCellValue(sheet, "B4", "Ventas")
	row := 5
	for _, h := range rep.Hourly {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), h.Hour)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), h.Amount)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Producto")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Unidades")
	row++
	for _, p := range rep.TopProducts {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.UnitsSold)
		row++
	}

	row++
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Stock bajo")
	row++
	for _, item := range rep.LowStock {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Stock)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.MinStock)
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}

	return &File{
		Name:        "reporte-ventas.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}
