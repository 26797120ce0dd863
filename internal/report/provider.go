// Package report serves the admin dashboard data. The series are fixed demo
// numbers; the provider interface is the seam where live aggregation would
// plug in.
package report

import (
	"errors"
	"time"

	"github.com/abarrotes/pos/internal/domain"
)

var ErrUnknownPeriod = errors.New("unknown report period")

const (
	PeriodDay   = "hoy"
	PeriodWeek  = "semana"
	PeriodMonth = "mes"
)

type Provider interface {
	Report(period string) (*domain.SalesReport, error)
}

// StaticProvider returns the same data set for every period, tagged with the
// requested one. The demo only ever had numbers for the current day.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (p *StaticProvider) Report(period string) (*domain.SalesReport, error) {
	switch period {
	case PeriodDay, PeriodWeek, PeriodMonth:
	default:
		return nil, ErrUnknownPeriod
	}

	return &domain.SalesReport{
		Period: period,
		Summary: domain.ReportSummary{
			DaySales:          4350,
			DaySalesDelta:     12,
			Transactions:      184,
			TransactionsDelta: 8,
			ItemsSold:         342,
			ItemsSoldDelta:    15,
			LowStockCount:     25,
		},
		Hourly: []domain.HourlySale{
			{Hour: "9:00", Amount: 450},
			{Hour: "10:00", Amount: 680},
			{Hour: "11:00", Amount: 920},
			{Hour: "12:00", Amount: 1250},
			{Hour: "13:00", Amount: 890},
			{Hour: "14:00", Amount: 1100},
			{Hour: "15:00", Amount: 750},
			{Hour: "16:00", Amount: 580},
		},
		TopProducts: []domain.TopProduct{
			{Name: "Coca Cola", UnitsSold: 45},
			{Name: "Pan Blanco", UnitsSold: 38},
			{Name: "Sabritas", UnitsSold: 32},
			{Name: "Agua", UnitsSold: 28},
		},
		LowStock: []domain.LowStockItem{
			{Name: "Leche Entera 1L", Stock: 3, MinStock: 10},
			{Name: "Huevos Blancos", Stock: 5, MinStock: 15},
			{Name: "Jabón para Trastes", Stock: 2, MinStock: 8},
			{Name: "Papel Higiénico", Stock: 4, MinStock: 12},
			{Name: "Aceite Vegetal", Stock: 1, MinStock: 6},
		},
		GeneratedAt: time.Now(),
	}, nil
}
