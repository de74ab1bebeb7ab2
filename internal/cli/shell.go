// Package cli реализует интерактивную консольную оболочку кассовой системы:
// вход и регистрацию пользователей и меню администратора и продавца.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
	"github.com/mmeshcher/pos-system/internal/service"
)

// Shell ведёт диалог с пользователем поверх произвольных потоков ввода-вывода.
// Ошибки предметной области печатаются и возвращают пользователя в меню;
// завершает работу только пункт выхода или конец ввода.
type Shell struct {
	auth    *service.Auth
	catalog *service.Catalog
	ledger  *service.Ledger
	billing *service.Billing

	expiryDays int

	in     *bufio.Scanner
	out    io.Writer
	logger *zap.Logger
}

// NewShell создаёт оболочку над указанными сервисами и потоками.
// expiryDays задаёт горизонт по умолчанию для сводки истекающих товаров.
func NewShell(
	auth *service.Auth,
	catalog *service.Catalog,
	ledger *service.Ledger,
	billing *service.Billing,
	expiryDays int,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Shell {
	return &Shell{
		auth:       auth,
		catalog:    catalog,
		ledger:     ledger,
		billing:    billing,
		expiryDays: expiryDays,
		in:         bufio.NewScanner(in),
		out:        out,
		logger:     logger,
	}
}

// Run запускает главное меню и работает до выхода или конца ввода.
func (s *Shell) Run() error {
	for {
		s.printf("\n=== Point of Sale System ===\n")
		s.printf("1. Login\n")
		s.printf("2. Register\n")
		s.printf("3. Exit\n")

		choice, ok := s.prompt("Select an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			s.login()
		case "2":
			s.register()
		case "3":
			s.printf("Goodbye.\n")
			return nil
		default:
			s.printf("Unknown option %q.\n", choice)
		}
	}
}

func (s *Shell) login() {
	username, ok := s.prompt("Username: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Password: ")
	if !ok {
		return
	}

	session, err := s.auth.Login(username, password)
	if err != nil {
		s.printf("Login failed: %v\n", err)
		return
	}

	s.logger.Info("user logged in",
		zap.String("username", session.Username),
		zap.String("role", string(session.Role)))
	s.printf("Welcome, %s.\n", session.Username)

	switch session.Role {
	case model.RoleAdmin:
		s.adminMenu(session)
	case model.RoleSalesman:
		s.salesmanMenu(session)
	default:
		s.printf("Unknown role %q.\n", session.Role)
	}
}

func (s *Shell) register() {
	username, ok := s.prompt("New username: ")
	if !ok {
		return
	}
	password, ok := s.prompt("Password: ")
	if !ok {
		return
	}

	if err := s.auth.Register(username, password); err != nil {
		s.printf("Registration failed: %v\n", err)
		return
	}
	s.printf("Account created. You can log in now.\n")
}

// prompt печатает приглашение и читает одну строку ввода.
// Второй результат ложен, когда ввод исчерпан.
func (s *Shell) prompt(label string) (string, bool) {
	s.printf("%s", label)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) printProducts(products []model.Product) {
	if len(products) == 0 {
		s.printf("No products found.\n")
		return
	}
	for _, p := range products {
		expiry := p.ExpiryDate
		if expiry == "" {
			expiry = "-"
		}
		s.printf("%s | %s | %s | price %s | qty %d | expires %s\n",
			p.ProductID, p.Name, p.Category, p.Price, p.Quantity, expiry)
	}
}
