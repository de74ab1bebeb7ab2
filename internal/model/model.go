// Package model содержит доменные сущности кассовой системы.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role описывает роль пользователя в системе.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleSalesman Role = "salesman"
)

// AdminUsername — зарезервированное имя единственной учётной записи администратора.
const AdminUsername = "admin"

// User представляет учётную запись пользователя.
// Имя пользователя служит ключом в документе пользователей и в запись не входит.
type User struct {
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session описывает активный сеанс вошедшего пользователя.
// Передаётся явно в вызовы рабочих процессов вместо глобального состояния.
type Session struct {
	Username string
	Role     Role
}

// Product представляет товар каталога и его складской остаток.
type Product struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	// ExpiryDate хранится строкой "YYYY-MM-DD"; пустая строка — без срока годности.
	ExpiryDate string `json:"expiry_date"`
}

// TransactionItem представляет одну позицию чека.
// TotalPrice всегда равна произведению цены за единицу на количество.
type TransactionItem struct {
	ProductID  string          `json:"product_id"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Transaction представляет завершённую продажу, сохранённую в журнале.
type Transaction struct {
	TransactionID   string            `json:"transaction_id"`
	Cashier         string            `json:"cashier"`
	Timestamp       time.Time         `json:"timestamp"`
	Items           []TransactionItem `json:"items"`
	TotalAmount     decimal.Decimal   `json:"total_amount"`
	PaymentReceived decimal.Decimal   `json:"payment_received"`
	Change          decimal.Decimal   `json:"change"`
}

// DailyReport содержит сводку продаж за один календарный день.
type DailyReport struct {
	Date              string
	TotalSales        decimal.Decimal
	TotalTransactions int
	TotalItemsSold    int
	Transactions      map[string]Transaction
}

// MonthlyReport содержит сводку продаж за календарный месяц с разбивкой по дням.
// Дни без продаж в DailyTotals отсутствуют.
type MonthlyReport struct {
	Year              int
	Month             time.Month
	TotalSales        decimal.Decimal
	TotalTransactions int
	DailyTotals       map[string]decimal.Decimal
}

// Receipt — проекция завершённой продажи для печати; отдельно не сохраняется.
type Receipt struct {
	TransactionID   string
	Cashier         string
	Timestamp       time.Time
	Lines           []ReceiptLine
	TotalAmount     decimal.Decimal
	PaymentReceived decimal.Decimal
	Change          decimal.Decimal
}

// ReceiptLine — строка чека с именем товара, взятым из текущего каталога.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
}
