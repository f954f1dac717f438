// Package report renders gym figures as spreadsheet downloads.
package report

import (
	"bytes"
	"context"
	"fmt"

	"gymdesk/internal/dashboard"

	"github.com/xuri/excelize/v2"
)

const (
	revenueSheet      = "Revenue"
	distributionSheet = "Membership Distribution"

	// built-in number format "0.00"
	numFmtTwoDecimals = 2
)

// Source is the part of the dashboard a report is built from. Both calls
// enforce gym ownership.
type Source interface {
	RevenueOverview(ctx context.Context, userID, gymID int, period string) ([]dashboard.RevenuePoint, error)
	MembershipDistribution(ctx context.Context, userID, gymID int) ([]dashboard.TypeCount, error)
}

type Service struct {
	source Source
}

func NewService(source Source) *Service {
	return &Service{source: source}
}

// RevenueWorkbook returns an XLSX file with the revenue buckets of period
// plus a total row, and the active membership distribution on a second sheet.
func (s *Service) RevenueWorkbook(ctx context.Context, userID, gymID int, period string) ([]byte, error) {
	points, err := s.source.RevenueOverview(ctx, userID, gymID, period)
	if err != nil {
		return nil, err
	}
	distribution, err := s.source.MembershipDistribution(ctx, userID, gymID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDecimals})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", revenueSheet); err != nil {
		return nil, err
	}
	if err := writeRevenue(f, points, bold, money); err != nil {
		return nil, fmt.Errorf("write revenue sheet: %w", err)
	}

	if _, err := f.NewSheet(distributionSheet); err != nil {
		return nil, err
	}
	if err := writeDistribution(f, distribution, bold); err != nil {
		return nil, fmt.Errorf("write distribution sheet: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRevenue(f *excelize.File, points []dashboard.RevenuePoint, bold, money int) error {
	if err := f.SetSheetRow(revenueSheet, "A1", &[]interface{}{"Period", "Amount"}); err != nil {
		return err
	}

	var total float64
	row := 2
	for _, p := range points {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(revenueSheet, cell, &[]interface{}{p.Period, p.Amount}); err != nil {
			return err
		}
		total += p.Amount
		row++
	}

	totalCell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(revenueSheet, totalCell, &[]interface{}{"Total", total}); err != nil {
		return err
	}

	lastAmount, _ := excelize.CoordinatesToCellName(2, row)
	if err := f.SetCellStyle(revenueSheet, "B2", lastAmount, money); err != nil {
		return err
	}
	if err := f.SetCellStyle(revenueSheet, "A1", "B1", bold); err != nil {
		return err
	}
	return f.SetCellStyle(revenueSheet, totalCell, lastAmount, bold)
}

func writeDistribution(f *excelize.File, distribution []dashboard.TypeCount, bold int) error {
	if err := f.SetSheetRow(distributionSheet, "A1", &[]interface{}{"Plan type", "Active memberships"}); err != nil {
		return err
	}
	for i, d := range distribution {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(distributionSheet, cell, &[]interface{}{d.Type, d.Count}); err != nil {
			return err
		}
	}
	return f.SetCellStyle(distributionSheet, "A1", "B1", bold)
}
