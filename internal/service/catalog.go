package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/mmeshcher/pos-system/internal/model"
)

// Catalog владеет записями товаров и их складскими остатками.
// Все операции читают документ товаров целиком, изменяют его в памяти
// и записывают обратно; мьютекс сериализует эти последовательности
// в пределах процесса.
type Catalog struct {
	mu        sync.Mutex
	storage   Storage
	threshold int
	logger    *zap.Logger
}

// NewCatalog создаёт каталог с указанным порогом предупреждения об остатке.
func NewCatalog(storage Storage, lowStockThreshold int, logger *zap.Logger) *Catalog {
	return &Catalog{
		storage:   storage,
		threshold: lowStockThreshold,
		logger:    logger,
	}
}

// ProductUpdate описывает частичное обновление товара: заполненные поля
// заменяют сохранённые значения, nil-поля остаются без изменений.
type ProductUpdate struct {
	Name       *string
	Category   *string
	Price      *decimal.Decimal
	Quantity   *int
	ExpiryDate *string
}

// Add добавляет новый товар в каталог.
func (c *Catalog) Add(product model.Product) error {
	if product.ProductID == "" {
		return fmt.Errorf("%w: product id must not be empty", ErrInvalidInput)
	}
	if product.Price.IsNegative() {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if product.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.storage.LoadProducts()
	if err != nil {
		return err
	}

	if _, ok := products[product.ProductID]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateProduct, product.ProductID)
	}

	products[product.ProductID] = product
	if err := c.storage.SaveProducts(products); err != nil {
		return err
	}

	c.logger.Info("product added", zap.String("product_id", product.ProductID))
	return nil
}

// Update применяет частичное обновление к сохранённому товару.
func (c *Catalog) Update(productID string, upd ProductUpdate) (model.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.storage.LoadProducts()
	if err != nil {
		return model.Product{}, err
	}

	product, ok := products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	if upd.Name != nil {
		product.Name = *upd.Name
	}
	if upd.Category != nil {
		product.Category = *upd.Category
	}
	if upd.Price != nil {
		if upd.Price.IsNegative() {
			return model.Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		product.Price = *upd.Price
	}
	if upd.Quantity != nil {
		if *upd.Quantity < 0 {
			return model.Product{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
		}
		product.Quantity = *upd.Quantity
	}
	if upd.ExpiryDate != nil {
		product.ExpiryDate = *upd.ExpiryDate
	}

	products[productID] = product
	if err := c.storage.SaveProducts(products); err != nil {
		return model.Product{}, err
	}

	return product, nil
}

// Remove удаляет товар из каталога без проверки ссылок из прежних продаж.
func (c *Catalog) Remove(productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.storage.LoadProducts()
	if err != nil {
		return err
	}

	if _, ok := products[productID]; !ok {
		return fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	delete(products, productID)
	if err := c.storage.SaveProducts(products); err != nil {
		return err
	}

	c.logger.Info("product removed", zap.String("product_id", productID))
	return nil
}

// AdjustStock изменяет складской остаток товара на delta: положительное значение —
// приход, отрицательное — списание. Это единственный путь изменения остатка,
// поэтому инвариант неотрицательности проверяется только здесь. Возвращает
// обновлённый товар и признак того, что остаток достиг порога предупреждения.
func (c *Catalog) AdjustStock(productID string, delta int) (model.Product, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.storage.LoadProducts()
	if err != nil {
		return model.Product{}, false, err
	}

	product, ok := products[productID]
	if !ok {
		return model.Product{}, false, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	newQuantity := product.Quantity + delta
	if newQuantity < 0 {
		return model.Product{}, false, fmt.Errorf("%w: %s", ErrInsufficientStock, productID)
	}

	product.Quantity = newQuantity
	products[productID] = product
	if err := c.storage.SaveProducts(products); err != nil {
		return model.Product{}, false, err
	}

	lowStock := newQuantity <= c.threshold
	if lowStock {
		c.logger.Warn("low stock",
			zap.String("product_id", productID),
			zap.String("name", product.Name),
			zap.Int("quantity", newQuantity))
	}

	return product, lowStock, nil
}

// Get возвращает товар по идентификатору.
func (c *Catalog) Get(productID string) (model.Product, error) {
	products, err := c.storage.LoadProducts()
	if err != nil {
		return model.Product{}, err
	}

	product, ok := products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	return product, nil
}

// List возвращает все товары каталога, упорядоченные по идентификатору.
func (c *Catalog) List() ([]model.Product, error) {
	products, err := c.storage.LoadProducts()
	if err != nil {
		return nil, err
	}

	res := make([]model.Product, 0, len(products))
	for _, p := range products {
		res = append(res, p)
	}
	sortProducts(res)

	return res, nil
}

// Search возвращает товары, у которых значение указанного поля совпадает
// с искомым без учёта регистра. Неизвестное имя поля не совпадает ни с чем.
func (c *Catalog) Search(field, value string) ([]model.Product, error) {
	products, err := c.storage.LoadProducts()
	if err != nil {
		return nil, err
	}

	res := make([]model.Product, 0)
	for _, p := range products {
		fieldValue, ok := productField(p, field)
		if !ok {
			continue
		}
		if strings.EqualFold(fieldValue, value) {
			res = append(res, p)
		}
	}
	sortProducts(res)

	return res, nil
}

// LowStock возвращает товары с остатком не выше порога предупреждения.
func (c *Catalog) LowStock() ([]model.Product, error) {
	products, err := c.storage.LoadProducts()
	if err != nil {
		return nil, err
	}

	res := make([]model.Product, 0)
	for _, p := range products {
		if p.Quantity <= c.threshold {
			res = append(res, p)
		}
	}
	sortProducts(res)

	return res, nil
}

// ExpiringWithin возвращает товары, срок годности которых истекает в ближайшие
// days дней включительно; уже просроченные товары тоже попадают в результат.
// Товары без срока годности и с нечитаемой датой пропускаются.
func (c *Catalog) ExpiringWithin(days int) ([]model.Product, error) {
	products, err := c.storage.LoadProducts()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	res := make([]model.Product, 0)
	for _, p := range products {
		if p.ExpiryDate == "" {
			continue
		}
		expiry, err := time.ParseInLocation("2006-01-02", p.ExpiryDate, now.Location())
		if err != nil {
			c.logger.Warn("unreadable expiry date skipped",
				zap.String("product_id", p.ProductID),
				zap.String("expiry_date", p.ExpiryDate))
			continue
		}
		daysUntil := int(expiry.Sub(today).Hours() / 24)
		if daysUntil <= days {
			res = append(res, p)
		}
	}
	sortProducts(res)

	return res, nil
}

func sortProducts(products []model.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductID < products[j].ProductID
	})
}

func productField(p model.Product, field string) (string, bool) {
	switch strings.ToLower(field) {
	case "product_id":
		return p.ProductID, true
	case "name":
		return p.Name, true
	case "category":
		return p.Category, true
	case "price":
		return p.Price.String(), true
	case "quantity":
		return strconv.Itoa(p.Quantity), true
	case "expiry_date":
		return p.ExpiryDate, true
	}
	return "", false
}
