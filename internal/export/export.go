// Package export renders the sales report as a downloadable file. Exporters
// read through the report provider and never touch session or cart state.
package export

import (
	"errors"
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/abarrotes/pos/internal/report"
)

var ErrUnknownFormat = errors.New("unknown export format")

const (
	FormatPDF   = "pdf"
	FormatExcel = "xlsx"
)

type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Exporter generates report files on demand. Concurrent requests for the
// same period and format share one generation via singleflight.
type Exporter struct {
	reports report.Provider
	sfg     singleflight.Group
}

func NewExporter(reports report.Provider) *Exporter {
	return &Exporter{reports: reports}
}

func (e *Exporter) Export(format, period string) (*File, error) {
	switch format {
	case FormatPDF, FormatExcel:
	default:
		return nil, ErrUnknownFormat
	}

	key := fmt.Sprintf("%s:%s", format, period)
	v, err, _ := e.sfg.Do(key, func() (interface{}, error) {
		rep, err := e.reports.Report(period)
		if err != nil {
			return nil, err
		}
		if format == FormatPDF {
			return renderPDF(rep)
		}
		return renderExcel(rep)
	})
	if err != nil {
		return nil, err
	}
	return v.(*File), nil
}
