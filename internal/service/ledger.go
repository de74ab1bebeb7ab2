package service

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Ledger сохраняет завершённые продажи и строит по ним отчёты.
// Отчёты каждый раз вычисляются заново по полному набору записей
// и нигде не кэшируются.
type Ledger struct {
	mu      sync.Mutex
	storage Storage
	logger  *zap.Logger
}

// NewLedger создаёт журнал продаж поверх указанного хранилища.
func NewLedger(storage Storage, logger *zap.Logger) *Ledger {
	return &Ledger{
		storage: storage,
		logger:  logger,
	}
}

// Record сохраняет проведённую продажу под её идентификатором.
// Повторный идентификатор молча перезаписывает прежнюю запись.
func (l *Ledger) Record(txn model.Transaction) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions, err := l.storage.LoadTransactions()
	if err != nil {
		return err
	}

	transactions[txn.TransactionID] = txn
	if err := l.storage.SaveTransactions(transactions); err != nil {
		return err
	}

	l.logger.Info("transaction recorded",
		zap.String("transaction_id", txn.TransactionID),
		zap.String("total", txn.TotalAmount.String()))
	return nil
}

// DailyReport строит сводку продаж за указанный календарный день.
func (l *Ledger) DailyReport(date time.Time) (*model.DailyReport, error) {
	transactions, err := l.storage.LoadTransactions()
	if err != nil {
		return nil, err
	}

	report := &model.DailyReport{
		Date:         date.Format("2006-01-02"),
		TotalSales:   decimal.New(0, -2),
		Transactions: make(map[string]model.Transaction),
	}

	y, m, d := date.Date()
	for id, txn := range transactions {
		ty, tm, td := txn.Timestamp.Date()
		if ty != y || tm != m || td != d {
			continue
		}

		report.Transactions[id] = txn
		report.TotalSales = report.TotalSales.Add(txn.TotalAmount)
		report.TotalTransactions++
		for _, item := range txn.Items {
			report.TotalItemsSold += item.Quantity
		}
	}

	return report, nil
}

// MonthlyReport строит сводку продаж за указанный месяц с разбивкой по дням.
// Дни без продаж в разбивку не включаются.
func (l *Ledger) MonthlyReport(year int, month time.Month) (*model.MonthlyReport, error) {
	transactions, err := l.storage.LoadTransactions()
	if err != nil {
		return nil, err
	}

	report := &model.MonthlyReport{
		Year:        year,
		Month:       month,
		TotalSales:  decimal.New(0, -2),
		DailyTotals: make(map[string]decimal.Decimal),
	}

	for _, txn := range transactions {
		if txn.Timestamp.Year() != year || txn.Timestamp.Month() != month {
			continue
		}

		report.TotalSales = report.TotalSales.Add(txn.TotalAmount)
		report.TotalTransactions++

		day := txn.Timestamp.Format("2006-01-02")
		total, ok := report.DailyTotals[day]
		if !ok {
			total = decimal.New(0, -2)
		}
		report.DailyTotals[day] = total.Add(txn.TotalAmount)
	}

	return report, nil
}
