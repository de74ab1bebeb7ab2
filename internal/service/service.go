// Package service реализует бизнес-логику кассовой системы.
package service

import (
	"errors"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Storage описывает контракт доступа к документам данных, используемый сервисами.
// Каждый документ загружается и сохраняется целиком.
type Storage interface {
	LoadProducts() (map[string]model.Product, error)
	SaveProducts(map[string]model.Product) error
	LoadTransactions() (map[string]model.Transaction, error)
	SaveTransactions(map[string]model.Transaction) error
	LoadUsers() (map[string]model.User, error)
	SaveUsers(map[string]model.User) error
}

// Ошибки доменных правил. Нарушение правила сообщается вызывающей стороне
// и никогда не завершает процесс.
var (
	// ErrDuplicateProduct возвращается при добавлении товара с занятым идентификатором.
	ErrDuplicateProduct = errors.New("product already exists")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrInsufficientStock возвращается, если списание опустило бы остаток ниже нуля.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInsufficientPayment возвращается, если полученная оплата меньше суммы чека.
	ErrInsufficientPayment = errors.New("insufficient payment")
	// ErrInvalidInput возвращается при недопустимых значениях полей.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTransactionSettled возвращается при попытке изменить проведённую продажу.
	ErrTransactionSettled = errors.New("transaction already settled")
	// ErrEmptyTransaction возвращается при попытке провести продажу без позиций.
	ErrEmptyTransaction = errors.New("transaction has no items")
	// ErrUserExists возвращается при регистрации занятого имени пользователя.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound возвращается, если пользователь не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials возвращается при неверном пароле.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAdminReserved возвращается при попытке зарегистрировать имя администратора.
	ErrAdminReserved = errors.New("admin username is reserved")
)
