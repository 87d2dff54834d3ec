package service

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
)

// RoyaltyStatement builds an XLSX statement for an artist: one sheet of
// royalty lines, one of payments, with running totals and the resulting
// balance. A zero from/to bound means unbounded on that side.
func (svc *Service) RoyaltyStatement(ctx context.Context, artistID int64, from, to time.Time) (*excelize.File, error) {
	artist, err := svc.FindArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	royalties, err := svc.RoyaltiesForArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}
	payments, err := svc.PaymentsForArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	inRange := func(t time.Time) bool {
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && t.After(to) {
			return false
		}
		return true
	}

	f := excelize.NewFile()
	royaltySheet := "Royalties"
	index, err := f.NewSheet(royaltySheet)
	if err != nil {
		return nil, err
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headers := []string{"Date", "Release ID", "Earning ID", "Description", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(royaltySheet, cell, header)
	}
	row := 2
	var totalRoyalties int64
	for _, royalty := range royalties {
		if !inRange(royalty.DateRecorded) {
			continue
		}
		totalRoyalties += royalty.Amount
		f.SetCellValue(royaltySheet, fmt.Sprintf("A%d", row), royalty.DateRecorded.Format("2006-01-02"))
		f.SetCellValue(royaltySheet, fmt.Sprintf("B%d", row), royalty.ReleaseID)
		f.SetCellValue(royaltySheet, fmt.Sprintf("C%d", row), royalty.EarningID)
		f.SetCellValue(royaltySheet, fmt.Sprintf("D%d", row), royalty.Description)
		f.SetCellValue(royaltySheet, fmt.Sprintf("E%d", row), royalty.Amount)
		row++
	}
	f.SetCellValue(royaltySheet, fmt.Sprintf("D%d", row), "Total")
	f.SetCellValue(royaltySheet, fmt.Sprintf("E%d", row), totalRoyalties)

	paymentSheet := "Payments"
	if _, err := f.NewSheet(paymentSheet); err != nil {
		return nil, err
	}
	headers = []string{"Date", "Reference", "Processing fee", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(paymentSheet, cell, header)
	}
	row = 2
	var totalPayments int64
	for _, payment := range payments {
		if !inRange(payment.DatePaid) {
			continue
		}
		totalPayments += payment.Amount
		f.SetCellValue(paymentSheet, fmt.Sprintf("A%d", row), payment.DatePaid.Format("2006-01-02"))
		f.SetCellValue(paymentSheet, fmt.Sprintf("B%d", row), payment.ReferenceNumber)
		f.SetCellValue(paymentSheet, fmt.Sprintf("C%d", row), payment.ProcessingFee)
		f.SetCellValue(paymentSheet, fmt.Sprintf("D%d", row), payment.Amount)
		row++
	}
	f.SetCellValue(paymentSheet, fmt.Sprintf("C%d", row), "Total")
	f.SetCellValue(paymentSheet, fmt.Sprintf("D%d", row), totalPayments)
	row += 2
	f.SetCellValue(paymentSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("Balance for %s", artist.Name))
	f.SetCellValue(paymentSheet, fmt.Sprintf("D%d", row), totalRoyalties-totalPayments)

	return f, nil
}
