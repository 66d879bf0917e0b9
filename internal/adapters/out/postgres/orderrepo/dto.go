// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/product"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items travel as a JSONB document; the order is the aggregate boundary, so
// items are never addressed outside their parent row. Seq records placement
// order and gives the dispatcher its FIFO scan.
type OrderDTO struct {
	Number      string     `gorm:"type:varchar(64);primaryKey"`
	Seq         int64      `gorm:"autoIncrement;uniqueIndex"`
	Status      int        `gorm:"not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	CompletedAt *time.Time
	Items       ItemsDTO `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line within the JSONB items document.
// Unit price is carried alongside the derived line price so the aggregate can
// be reconstructed without consulting the catalog.
type ItemDTO struct {
	ProductCode string   `json:"productCode"`
	Quantity    int      `json:"quantity"`
	Toppings    []string `json:"toppings"`
	Category    string   `json:"category"`
	UnitPrice   float64  `json:"unitPrice"`
	LinePrice   float64  `json:"linePrice"`
}

// ItemsDTO maps the items slice onto a single JSONB column.
type ItemsDTO []ItemDTO

// Value implements driver.Valuer for JSONB serialization.
func (items ItemsDTO) Value() (driver.Value, error) {
	return json.Marshal(items)
}

// Scan implements sql.Scanner for JSONB deserialization.
func (items *ItemsDTO) Scan(value any) error {
	if value == nil {
		*items = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported items column type %T", value)
	}

	return json.Unmarshal(raw, items)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make(ItemsDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			ProductCode: item.ProductCode(),
			Quantity:    item.Quantity(),
			Toppings:    item.Toppings(),
			Category:    item.Category().String(),
			UnitPrice:   item.UnitPrice().Amount(),
			LinePrice:   item.LinePrice().Amount(),
		})
	}

	return OrderDTO{
		Number:      aggregate.Number().String(),
		Status:      int(aggregate.Status()),
		CreatedAt:   aggregate.CreatedAt(),
		CompletedAt: aggregate.CompletedAt(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lifecycle state using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		category, catErr := product.CategoryFromString(itemDto.Category)
		if catErr != nil {
			return nil, catErr
		}

		unitPrice, priceErr := kernel.NewPrice(itemDto.UnitPrice)
		if priceErr != nil {
			return nil, priceErr
		}

		item, itemErr := order.NewItem(itemDto.ProductCode, itemDto.Quantity, itemDto.Toppings, category, unitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(number, items, order.Status(dto.Status), dto.CreatedAt, dto.CompletedAt)
}
