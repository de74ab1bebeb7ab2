// Package storage содержит реализацию хранения данных в JSON-документах на диске.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

const (
	productsFile     = "inventory.json"
	transactionsFile = "transactions.json"
	usersFile        = "userdata.json"
)

// JSONStorage предоставляет доступ к данным кассовой системы.
// Каждый домен хранится отдельным JSON-документом, который перечитывается
// и перезаписывается целиком при каждой операции.
type JSONStorage struct {
	dir    string
	logger *zap.Logger
}

// NewJSONStorage создаёт хранилище поверх указанного каталога данных.
// Каталог создаётся при первой записи.
func NewJSONStorage(dir string, logger *zap.Logger) *JSONStorage {
	return &JSONStorage{
		dir:    dir,
		logger: logger,
	}
}

// read возвращает содержимое документа или nil, если файла ещё нет.
func (s *JSONStorage) read(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// write перезаписывает документ целиком в отформатированном виде.
func (s *JSONStorage) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	return nil
}

// LoadProducts возвращает полный документ товаров.
// Повреждённый документ подменяется пустым с предупреждением в журнале.
func (s *JSONStorage) LoadProducts() (map[string]model.Product, error) {
	data, err := s.read(productsFile)
	if err != nil {
		return nil, err
	}

	products := make(map[string]model.Product)
	if len(data) == 0 {
		return products, nil
	}

	if err := json.Unmarshal(data, &products); err != nil {
		s.logger.Warn("corrupt document replaced with empty data",
			zap.String("file", productsFile), zap.Error(err))
		return make(map[string]model.Product), nil
	}

	return products, nil
}

// SaveProducts перезаписывает документ товаров.
func (s *JSONStorage) SaveProducts(products map[string]model.Product) error {
	return s.write(productsFile, products)
}

// LoadTransactions возвращает полный документ завершённых продаж.
func (s *JSONStorage) LoadTransactions() (map[string]model.Transaction, error) {
	data, err := s.read(transactionsFile)
	if err != nil {
		return nil, err
	}

	transactions := make(map[string]model.Transaction)
	if len(data) == 0 {
		return transactions, nil
	}

	if err := json.Unmarshal(data, &transactions); err != nil {
		s.logger.Warn("corrupt document replaced with empty data",
			zap.String("file", transactionsFile), zap.Error(err))
		return make(map[string]model.Transaction), nil
	}

	return transactions, nil
}

// SaveTransactions перезаписывает документ завершённых продаж.
func (s *JSONStorage) SaveTransactions(transactions map[string]model.Transaction) error {
	return s.write(transactionsFile, transactions)
}

// LoadUsers возвращает полный документ учётных записей.
func (s *JSONStorage) LoadUsers() (map[string]model.User, error) {
	data, err := s.read(usersFile)
	if err != nil {
		return nil, err
	}

	users := make(map[string]model.User)
	if len(data) == 0 {
		return users, nil
	}

	if err := json.Unmarshal(data, &users); err != nil {
		s.logger.Warn("corrupt document replaced with empty data",
			zap.String("file", usersFile), zap.Error(err))
		return make(map[string]model.User), nil
	}

	return users, nil
}

// SaveUsers перезаписывает документ учётных записей.
func (s *JSONStorage) SaveUsers(users map[string]model.User) error {
	return s.write(usersFile, users)
}
