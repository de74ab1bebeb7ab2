package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Billing координирует каталог и журнал продаж при оформлении одной продажи:
// резервирует остаток по каждой позиции, накапливает чек, принимает оплату
// и сохраняет результат.
type Billing struct {
	catalog *Catalog
	ledger  *Ledger
	logger  *zap.Logger
}

// NewBilling создаёт рабочий процесс оформления продаж.
func NewBilling(catalog *Catalog, ledger *Ledger, logger *zap.Logger) *Billing {
	return &Billing{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}
}

// NewSale открывает новую продажу для кассира. Случайный суффикс в
// идентификаторе исключает коллизии продаж, начатых в одну секунду.
func (b *Billing) NewSale(cashier string) *Transaction {
	id := fmt.Sprintf("TXN%s-%s", time.Now().Format("20060102150405"), uuid.NewString()[:8])
	return NewTransaction(id, cashier)
}

// AddLine добавляет позицию к продаже по текущей цене каталога и сразу
// списывает остаток. Отклонённая позиция не прерывает продажу.
// Списанные позиции при отказе от продажи на склад не возвращаются.
func (b *Billing) AddLine(t *Transaction, productID string, quantity int) (model.TransactionItem, error) {
	if t.Settled() {
		return model.TransactionItem{}, ErrTransactionSettled
	}
	if quantity <= 0 {
		return model.TransactionItem{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	product, err := b.catalog.Get(productID)
	if err != nil {
		return model.TransactionItem{}, err
	}

	if _, _, err := b.catalog.AdjustStock(productID, -quantity); err != nil {
		return model.TransactionItem{}, err
	}

	item := NewItem(productID, quantity, product.Price)
	if err := t.AddItem(item); err != nil {
		return model.TransactionItem{}, err
	}

	return item, nil
}

// Settle принимает оплату, проводит продажу, сохраняет её в журнале
// и возвращает проекцию чека. Продажа без позиций отклоняется и
// нигде не сохраняется.
func (b *Billing) Settle(t *Transaction, payment decimal.Decimal) (*model.Receipt, error) {
	if len(t.Items()) == 0 {
		return nil, ErrEmptyTransaction
	}

	if err := t.ProcessPayment(payment); err != nil {
		return nil, err
	}

	record := t.Record()
	if err := b.ledger.Record(record); err != nil {
		return nil, err
	}

	return b.buildReceipt(record)
}

// buildReceipt строит проекцию чека для печати. Имена товаров берутся из
// текущего каталога; для уже удалённых товаров остаётся идентификатор.
func (b *Billing) buildReceipt(record model.Transaction) (*model.Receipt, error) {
	receipt := &model.Receipt{
		TransactionID:   record.TransactionID,
		Cashier:         record.Cashier,
		Timestamp:       record.Timestamp,
		Lines:           make([]model.ReceiptLine, 0, len(record.Items)),
		TotalAmount:     record.TotalAmount,
		PaymentReceived: record.PaymentReceived,
		Change:          record.Change,
	}

	for _, item := range record.Items {
		name := item.ProductID
		product, err := b.catalog.Get(item.ProductID)
		if err == nil {
			name = product.Name
		} else if !errors.Is(err, ErrProductNotFound) {
			return nil, err
		}

		receipt.Lines = append(receipt.Lines, model.ReceiptLine{
			ProductName: name,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return receipt, nil
}
