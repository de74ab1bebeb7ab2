package cli

import (
	"sort"

	"github.com/mmeshcher/pos-system/internal/model"
	"github.com/mmeshcher/pos-system/internal/validation"
)

// salesmanMenu обслуживает сеанс продавца до выхода из учётной записи.
func (s *Shell) salesmanMenu(session *model.Session) {
	for {
		s.printf("\n--- Salesman Menu (%s) ---\n", session.Username)
		s.printf("1. Create bill\n")
		s.printf("2. View all products\n")
		s.printf("3. Search products\n")
		s.printf("4. Adjust stock\n")
		s.printf("5. Low stock\n")
		s.printf("6. Daily report\n")
		s.printf("7. Logout\n")

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.createBill(session)
		case "2":
			s.viewAllProducts()
		case "3":
			s.searchProducts()
		case "4":
			s.adjustStock()
		case "5":
			s.showLowStock()
		case "6":
			s.dailyReport()
		case "7":
			return
		default:
			s.printf("Unknown option %q.\n", choice)
		}
	}
}

// createBill ведёт оформление одной продажи. Отклонённая позиция или
// недостаточная оплата не прерывают продажу; пустая продажа отменяется
// без сохранения.
func (s *Shell) createBill(session *model.Session) {
	sale := s.billing.NewSale(session.Username)
	s.printf("New bill %s. Enter product lines, 'done' to finish.\n", sale.ID())

	for {
		id, ok := s.prompt("Product ID (or 'done'): ")
		if !ok {
			return
		}
		if id == "done" {
			break
		}

		quantityRaw, ok := s.prompt("Quantity: ")
		if !ok {
			return
		}
		quantity, err := validation.ParseQuantity(quantityRaw)
		if err != nil {
			s.printf("Invalid quantity: %v\n", err)
			continue
		}

		item, err := s.billing.AddLine(sale, id, quantity)
		if err != nil {
			s.printf("Line rejected: %v\n", err)
			continue
		}
		s.printf("Added %d x %s = %s. Running total: %s\n",
			item.Quantity, item.ProductID, item.TotalPrice, sale.Total())
	}

	if len(sale.Items()) == 0 {
		s.printf("Bill is empty, nothing to settle.\n")
		return
	}

	for {
		s.printf("Total due: %s\n", sale.Total())
		paymentRaw, ok := s.prompt("Payment received: ")
		if !ok {
			return
		}
		payment, err := validation.ParseMoney(paymentRaw)
		if err != nil {
			s.printf("Invalid amount: %v\n", err)
			continue
		}

		receipt, err := s.billing.Settle(sale, payment)
		if err != nil {
			s.printf("Payment rejected: %v\n", err)
			continue
		}

		s.printReceipt(receipt)
		return
	}
}

func (s *Shell) printReceipt(receipt *model.Receipt) {
	s.printf("\n======= RECEIPT =======\n")
	s.printf("Transaction: %s\n", receipt.TransactionID)
	s.printf("Cashier: %s\n", receipt.Cashier)
	s.printf("Date: %s\n", receipt.Timestamp.Format("2006-01-02 15:04:05"))
	for _, line := range receipt.Lines {
		s.printf("%d x %s @ %s = %s\n",
			line.Quantity, line.ProductName, line.UnitPrice, line.TotalPrice)
	}
	s.printf("Total: %s\n", receipt.TotalAmount)
	s.printf("Paid: %s\n", receipt.PaymentReceived)
	s.printf("Change: %s\n", receipt.Change)
	s.printf("=======================\n")
}

func (s *Shell) adjustStock() {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return
	}
	deltaRaw, ok := s.prompt("Quantity change (negative to remove): ")
	if !ok {
		return
	}
	delta, err := validation.ParseDelta(deltaRaw)
	if err != nil {
		s.printf("Invalid quantity change: %v\n", err)
		return
	}

	product, lowStock, err := s.catalog.AdjustStock(id, delta)
	if err != nil {
		s.printf("Could not adjust stock: %v\n", err)
		return
	}
	s.printf("Stock of %s is now %d.\n", product.ProductID, product.Quantity)
	if lowStock {
		s.printf("Warning: %s is low on stock.\n", product.ProductID)
	}
}

func (s *Shell) dailyReport() {
	dateRaw, ok := s.prompt("Date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	date, err := validation.ParseDate(dateRaw)
	if err != nil {
		s.printf("Invalid date: %v\n", err)
		return
	}

	report, err := s.ledger.DailyReport(date)
	if err != nil {
		s.printf("Could not build report: %v\n", err)
		return
	}

	s.printf("\nDaily report %s\n", report.Date)
	s.printf("Total sales: %s\n", report.TotalSales)
	s.printf("Transactions: %d\n", report.TotalTransactions)
	s.printf("Items sold: %d\n", report.TotalItemsSold)

	ids := make([]string, 0, len(report.Transactions))
	for id := range report.Transactions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		txn := report.Transactions[id]
		s.printf("  %s | %s | %s\n", id, txn.Cashier, txn.TotalAmount)
	}
}
