package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

func recordedTransaction(id string, ts time.Time, total string, items ...model.TransactionItem) model.Transaction {
	return model.Transaction{
		TransactionID:   id,
		Cashier:         "alice",
		Timestamp:       ts,
		Items:           items,
		TotalAmount:     decimal.RequireFromString(total),
		PaymentReceived: decimal.RequireFromString(total),
		Change:          decimal.New(0, -2),
	}
}

func TestLedgerRecord_Overwrites(t *testing.T) {
	storage := newMemStorage()
	ledger := NewLedger(storage, zap.NewNop())

	ts := time.Date(2024, 11, 10, 12, 0, 0, 0, time.UTC)
	if err := ledger.Record(recordedTransaction("TXN1", ts, "10.00")); err != nil {
		t.Fatalf("Record error: %v", err)
	}
	if err := ledger.Record(recordedTransaction("TXN1", ts, "25.00")); err != nil {
		t.Fatalf("Record error: %v", err)
	}

	if len(storage.transactions) != 1 {
		t.Fatalf("stored %d transactions, want 1", len(storage.transactions))
	}
	if got := storage.transactions["TXN1"].TotalAmount.String(); got != "25.00" {
		t.Fatalf("stored total = %s, want 25.00", got)
	}
}

func TestLedgerDailyReport_Empty(t *testing.T) {
	ledger := NewLedger(newMemStorage(), zap.NewNop())

	report, err := ledger.DailyReport(time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("DailyReport error: %v", err)
	}

	if report.Date != "2024-11-10" {
		t.Fatalf("date = %s, want 2024-11-10", report.Date)
	}
	if got := report.TotalSales.String(); got != "0.00" {
		t.Fatalf("total sales = %s, want 0.00", got)
	}
	if report.TotalTransactions != 0 || report.TotalItemsSold != 0 || len(report.Transactions) != 0 {
		t.Fatalf("empty day produced non-empty report: %+v", report)
	}
}

func TestLedgerDailyReport_FiltersByDay(t *testing.T) {
	ledger := NewLedger(newMemStorage(), zap.NewNop())

	day := time.Date(2024, 11, 10, 0, 0, 0, 0, time.UTC)
	items := []model.TransactionItem{
		{ProductID: "P1", Quantity: 2, UnitPrice: decimal.RequireFromString("10.00"), TotalPrice: decimal.RequireFromString("20.00")},
	}

	for _, txn := range []model.Transaction{
		recordedTransaction("TXN1", day.Add(9*time.Hour), "20.00", items...),
		recordedTransaction("TXN2", day.Add(18*time.Hour), "5.50", model.TransactionItem{
			ProductID: "P2", Quantity: 1,
			UnitPrice:  decimal.RequireFromString("5.50"),
			TotalPrice: decimal.RequireFromString("5.50"),
		}),
		recordedTransaction("TXN3", day.AddDate(0, 0, 1), "99.00", items...),
	} {
		if err := ledger.Record(txn); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	report, err := ledger.DailyReport(day)
	if err != nil {
		t.Fatalf("DailyReport error: %v", err)
	}

	if got := report.TotalSales.String(); got != "25.50" {
		t.Fatalf("total sales = %s, want 25.50", got)
	}
	if report.TotalTransactions != 2 {
		t.Fatalf("total transactions = %d, want 2", report.TotalTransactions)
	}
	if report.TotalItemsSold != 3 {
		t.Fatalf("total items sold = %d, want 3", report.TotalItemsSold)
	}
	if _, ok := report.Transactions["TXN3"]; ok {
		t.Fatalf("next-day transaction included in report")
	}
}

func TestLedgerMonthlyReport(t *testing.T) {
	ledger := NewLedger(newMemStorage(), zap.NewNop())

	for _, txn := range []model.Transaction{
		recordedTransaction("TXN1", time.Date(2024, 11, 10, 9, 0, 0, 0, time.UTC), "20.00"),
		recordedTransaction("TXN2", time.Date(2024, 11, 10, 18, 0, 0, 0, time.UTC), "5.50"),
		recordedTransaction("TXN3", time.Date(2024, 11, 25, 12, 0, 0, 0, time.UTC), "10.00"),
		recordedTransaction("TXN4", time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC), "99.00"),
	} {
		if err := ledger.Record(txn); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	report, err := ledger.MonthlyReport(2024, time.November)
	if err != nil {
		t.Fatalf("MonthlyReport error: %v", err)
	}

	if got := report.TotalSales.String(); got != "35.50" {
		t.Fatalf("total sales = %s, want 35.50", got)
	}
	if report.TotalTransactions != 3 {
		t.Fatalf("total transactions = %d, want 3", report.TotalTransactions)
	}
	if len(report.DailyTotals) != 2 {
		t.Fatalf("daily totals cover %d days, want 2", len(report.DailyTotals))
	}
	if got := report.DailyTotals["2024-11-10"].String(); got != "25.50" {
		t.Fatalf("daily total 2024-11-10 = %s, want 25.50", got)
	}
	if got := report.DailyTotals["2024-11-25"].String(); got != "10.00" {
		t.Fatalf("daily total 2024-11-25 = %s, want 10.00", got)
	}
}
