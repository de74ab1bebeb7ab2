package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mmeshcher/pos-system/internal/model"
	"github.com/mmeshcher/pos-system/internal/service"
	"github.com/mmeshcher/pos-system/internal/validation"
)

// adminMenu обслуживает сеанс администратора до выхода из учётной записи.
func (s *Shell) adminMenu(session *model.Session) {
	for {
		s.printf("\n--- Admin Menu (%s) ---\n", session.Username)
		s.printf("1. Add product\n")
		s.printf("2. Update product\n")
		s.printf("3. Delete product\n")
		s.printf("4. View all products\n")
		s.printf("5. Search products\n")
		s.printf("6. Low stock\n")
		s.printf("7. Expiring products\n")
		s.printf("8. Monthly report\n")
		s.printf("9. Logout\n")

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			s.addProduct()
		case "2":
			s.updateProduct()
		case "3":
			s.deleteProduct()
		case "4":
			s.viewAllProducts()
		case "5":
			s.searchProducts()
		case "6":
			s.showLowStock()
		case "7":
			s.showExpiring()
		case "8":
			s.monthlyReport()
		case "9":
			return
		default:
			s.printf("Unknown option %q.\n", choice)
		}
	}
}

func (s *Shell) addProduct() {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return
	}
	name, ok := s.prompt("Name: ")
	if !ok {
		return
	}
	category, ok := s.prompt("Category: ")
	if !ok {
		return
	}

	priceRaw, ok := s.prompt("Price: ")
	if !ok {
		return
	}
	price, err := validation.ParseMoney(priceRaw)
	if err != nil {
		s.printf("Invalid price: %v\n", err)
		return
	}

	quantityRaw, ok := s.prompt("Quantity: ")
	if !ok {
		return
	}
	quantity, err := validation.ParseDelta(quantityRaw)
	if err != nil {
		s.printf("Invalid quantity: %v\n", err)
		return
	}

	expiry, ok := s.prompt("Expiry date (YYYY-MM-DD, blank for none): ")
	if !ok {
		return
	}
	if expiry != "" {
		if _, err := validation.ParseDate(expiry); err != nil {
			s.printf("Invalid expiry date: %v\n", err)
			return
		}
	}

	product := model.Product{
		ProductID:  id,
		Name:       name,
		Category:   category,
		Price:      price,
		Quantity:   quantity,
		ExpiryDate: expiry,
	}
	if err := s.catalog.Add(product); err != nil {
		s.printf("Could not add product: %v\n", err)
		return
	}
	s.printf("Product %s added.\n", id)
}

func (s *Shell) updateProduct() {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return
	}

	var upd service.ProductUpdate

	name, ok := s.prompt("New name (blank to keep): ")
	if !ok {
		return
	}
	if name != "" {
		upd.Name = &name
	}

	category, ok := s.prompt("New category (blank to keep): ")
	if !ok {
		return
	}
	if category != "" {
		upd.Category = &category
	}

	priceRaw, ok := s.prompt("New price (blank to keep): ")
	if !ok {
		return
	}
	if priceRaw != "" {
		price, err := validation.ParseMoney(priceRaw)
		if err != nil {
			s.printf("Invalid price: %v\n", err)
			return
		}
		upd.Price = &price
	}

	quantityRaw, ok := s.prompt("New quantity (blank to keep): ")
	if !ok {
		return
	}
	if quantityRaw != "" {
		quantity, err := validation.ParseDelta(quantityRaw)
		if err != nil {
			s.printf("Invalid quantity: %v\n", err)
			return
		}
		upd.Quantity = &quantity
	}

	expiry, ok := s.prompt("New expiry date (blank to keep): ")
	if !ok {
		return
	}
	if expiry != "" {
		if _, err := validation.ParseDate(expiry); err != nil {
			s.printf("Invalid expiry date: %v\n", err)
			return
		}
		upd.ExpiryDate = &expiry
	}

	product, err := s.catalog.Update(id, upd)
	if err != nil {
		s.printf("Could not update product: %v\n", err)
		return
	}
	s.printf("Product %s updated.\n", product.ProductID)
}

func (s *Shell) deleteProduct() {
	id, ok := s.prompt("Product ID: ")
	if !ok {
		return
	}
	if err := s.catalog.Remove(id); err != nil {
		s.printf("Could not delete product: %v\n", err)
		return
	}
	s.printf("Product %s deleted.\n", id)
}

func (s *Shell) viewAllProducts() {
	products, err := s.catalog.List()
	if err != nil {
		s.printf("Could not load products: %v\n", err)
		return
	}
	s.printProducts(products)
}

func (s *Shell) searchProducts() {
	field, ok := s.prompt("Search field (product_id/name/category/price/quantity/expiry_date): ")
	if !ok {
		return
	}
	value, ok := s.prompt("Search value: ")
	if !ok {
		return
	}

	products, err := s.catalog.Search(field, value)
	if err != nil {
		s.printf("Search failed: %v\n", err)
		return
	}
	s.printProducts(products)
}

func (s *Shell) showLowStock() {
	products, err := s.catalog.LowStock()
	if err != nil {
		s.printf("Could not load products: %v\n", err)
		return
	}
	if len(products) == 0 {
		s.printf("No products are low on stock.\n")
		return
	}
	s.printProducts(products)
}

func (s *Shell) showExpiring() {
	daysRaw, ok := s.prompt(fmt.Sprintf("Days ahead (blank for %d): ", s.expiryDays))
	if !ok {
		return
	}
	days := s.expiryDays
	if daysRaw != "" {
		parsed, err := validation.ParseDelta(daysRaw)
		if err != nil {
			s.printf("Invalid number of days: %v\n", err)
			return
		}
		days = parsed
	}

	products, err := s.catalog.ExpiringWithin(days)
	if err != nil {
		s.printf("Could not load products: %v\n", err)
		return
	}
	if len(products) == 0 {
		s.printf("No products expire within %d days.\n", days)
		return
	}
	s.printProducts(products)
}

func (s *Shell) monthlyReport() {
	yearRaw, ok := s.prompt("Year: ")
	if !ok {
		return
	}
	year, err := strconv.Atoi(yearRaw)
	if err != nil {
		s.printf("Invalid year: %v\n", err)
		return
	}

	monthRaw, ok := s.prompt("Month (1-12): ")
	if !ok {
		return
	}
	month, err := validation.ParseMonth(monthRaw)
	if err != nil {
		s.printf("Invalid month: %v\n", err)
		return
	}

	report, err := s.ledger.MonthlyReport(year, month)
	if err != nil {
		s.printf("Could not build report: %v\n", err)
		return
	}

	s.printf("\nMonthly report %d-%02d\n", report.Year, int(report.Month))
	s.printf("Total sales: %s\n", report.TotalSales)
	s.printf("Transactions: %d\n", report.TotalTransactions)

	days := make([]string, 0, len(report.DailyTotals))
	for day := range report.DailyTotals {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		s.printf("  %s: %s\n", day, report.DailyTotals[day])
	}
}
