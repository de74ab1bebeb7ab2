package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

func newTestStorage(t *testing.T) *JSONStorage {
	t.Helper()
	return NewJSONStorage(t.TempDir(), zap.NewNop())
}

func TestLoadProducts_MissingFile(t *testing.T) {
	s := newTestStorage(t)

	products, err := s.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
}

func TestProducts_RoundTripKeepsDecimalExact(t *testing.T) {
	s := newTestStorage(t)

	products := map[string]model.Product{
		"P1": {
			ProductID:  "P1",
			Name:       "Tea",
			Category:   "Beverage",
			Price:      decimal.RequireFromString("19.99"),
			Quantity:   10,
			ExpiryDate: "2025-06-01",
		},
	}

	require.NoError(t, s.SaveProducts(products))

	loaded, err := s.LoadProducts()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded["P1"]
	assert.Equal(t, "19.99", got.Price.String())
	assert.Equal(t, "Tea", got.Name)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, "2025-06-01", got.ExpiryDate)
}

func TestTransactions_RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	ts := time.Date(2024, 11, 10, 12, 30, 0, 0, time.UTC)
	txn := model.Transaction{
		TransactionID: "TXN20241110123000-a1b2c3d4",
		Cashier:       "ali",
		Timestamp:     ts,
		Items: []model.TransactionItem{
			{
				ProductID:  "P1",
				Quantity:   2,
				UnitPrice:  decimal.RequireFromString("10.00"),
				TotalPrice: decimal.RequireFromString("20.00"),
			},
		},
		TotalAmount:     decimal.RequireFromString("20.00"),
		PaymentReceived: decimal.RequireFromString("25.00"),
		Change:          decimal.RequireFromString("5.00"),
	}

	require.NoError(t, s.SaveTransactions(map[string]model.Transaction{txn.TransactionID: txn}))

	loaded, err := s.LoadTransactions()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[txn.TransactionID]
	assert.Equal(t, "ali", got.Cashier)
	assert.True(t, got.Timestamp.Equal(ts))
	require.Len(t, got.Items, 1)
	assert.Equal(t, "10.00", got.Items[0].UnitPrice.String())
	assert.Equal(t, "20.00", got.TotalAmount.String())
	assert.Equal(t, "5.00", got.Change.String())
}

func TestUsers_RoundTrip(t *testing.T) {
	s := newTestStorage(t)

	users := map[string]model.User{
		"admin": {Password: "secret", Role: model.RoleAdmin},
		"ali":   {Password: "pass", Role: model.RoleSalesman},
	}

	require.NoError(t, s.SaveUsers(users))

	loaded, err := s.LoadUsers()
	require.NoError(t, err)
	assert.Equal(t, users, loaded)
}

func TestLoad_CorruptDocumentReplacedWithEmpty(t *testing.T) {
	dir := t.TempDir()
	s := NewJSONStorage(dir, zap.NewNop())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "inventory.json"), []byte("{not json"), 0o644))

	products, err := s.LoadProducts()
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestSave_UnwritableDirReported(t *testing.T) {
	dir := t.TempDir()
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("file, not a dir"), 0o644))

	s := NewJSONStorage(filepath.Join(blocked, "nested"), zap.NewNop())

	err := s.SaveUsers(map[string]model.User{})
	assert.Error(t, err)
}
