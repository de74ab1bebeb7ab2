package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Transaction представляет незавершённую продажу. Пока продажа открыта,
// к ней можно добавлять позиции; после проведения оплаты она становится
// неизменяемой.
type Transaction struct {
	record  model.Transaction
	settled bool
}

// NewTransaction открывает новую продажу с нулевой суммой для указанного кассира.
func NewTransaction(id, cashier string) *Transaction {
	return &Transaction{
		record: model.Transaction{
			TransactionID:   id,
			Cashier:         cashier,
			Timestamp:       time.Now(),
			TotalAmount:     decimal.New(0, -2),
			PaymentReceived: decimal.New(0, -2),
			Change:          decimal.New(0, -2),
		},
	}
}

// NewItem создаёт позицию чека. Итоговая стоимость позиции всегда
// пересчитывается из цены за единицу и количества.
func NewItem(productID string, quantity int, unitPrice decimal.Decimal) model.TransactionItem {
	return model.TransactionItem{
		ProductID:  productID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// AddItem добавляет позицию к открытой продаже и увеличивает сумму чека.
func (t *Transaction) AddItem(item model.TransactionItem) error {
	if t.settled {
		return ErrTransactionSettled
	}

	t.record.Items = append(t.record.Items, item)
	t.record.TotalAmount = t.record.TotalAmount.Add(item.TotalPrice)
	return nil
}

// ProcessPayment фиксирует полученную оплату и вычисляет сдачу.
// Недостаточная оплата отклоняется, продажа остаётся открытой без изменений.
func (t *Transaction) ProcessPayment(amount decimal.Decimal) error {
	if t.settled {
		return ErrTransactionSettled
	}
	if amount.LessThan(t.record.TotalAmount) {
		return ErrInsufficientPayment
	}

	t.record.PaymentReceived = amount
	t.record.Change = amount.Sub(t.record.TotalAmount)
	t.settled = true
	return nil
}

// ID возвращает идентификатор продажи.
func (t *Transaction) ID() string {
	return t.record.TransactionID
}

// Cashier возвращает имя кассира.
func (t *Transaction) Cashier() string {
	return t.record.Cashier
}

// Total возвращает текущую сумму чека.
func (t *Transaction) Total() decimal.Decimal {
	return t.record.TotalAmount
}

// Items возвращает копию списка позиций.
func (t *Transaction) Items() []model.TransactionItem {
	items := make([]model.TransactionItem, len(t.record.Items))
	copy(items, t.record.Items)
	return items
}

// Settled сообщает, проведена ли продажа.
func (t *Transaction) Settled() bool {
	return t.settled
}

// Record возвращает снимок продажи для сохранения в журнале.
func (t *Transaction) Record() model.Transaction {
	record := t.record
	record.Items = make([]model.TransactionItem, len(t.record.Items))
	copy(record.Items, t.record.Items)
	return record
}
