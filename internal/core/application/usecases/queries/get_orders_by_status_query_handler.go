package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"dispatch/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads orders straight from the database as a
// thin projection, without reconstructing order aggregates.
//
// Example:
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	query, _ := NewGetOrdersByStatusQuery(order.Placed)
//
//	placed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list placed orders: %w", err)
//	}
//	fmt.Printf("%d orders waiting for dispatch\n", len(placed))
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for order status queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// itemRow mirrors the JSON shape order items are persisted in.
type itemRow struct {
	ProductCode string   `json:"productCode"`
	Quantity    int      `json:"quantity"`
	Toppings    []string `json:"toppings"`
	Category    string   `json:"category"`
	LinePrice   float64  `json:"linePrice"`
}

// Handle executes the query to retrieve all orders in the requested status.
// Results come back in placement order, so dispatch queue order is preserved
// for Placed orders.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			number,
			status,
			created_at,
			completed_at,
			items
		FROM orders
		WHERE status = ?
		ORDER BY seq
	`, query.Status()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetOrdersByStatusQueryResponse
		var status int
		var completedAt sql.NullTime
		var itemsJSON []byte

		err = rows.Scan(
			&orderResp.Number,
			&status,
			&orderResp.CreatedAt,
			&completedAt,
			&itemsJSON,
		)
		if err != nil {
			return nil, err
		}

		orderResp.Status = order.Status(status).String()

		if completedAt.Valid {
			stamped := completedAt.Time
			orderResp.CompletedAt = &stamped
		}

		var items []itemRow
		if err = json.Unmarshal(itemsJSON, &items); err != nil {
			return nil, err
		}
		for _, item := range items {
			orderResp.Items = append(orderResp.Items, GetOrdersByStatusItemResponse{
				ProductCode: item.ProductCode,
				Quantity:    item.Quantity,
				Toppings:    item.Toppings,
				Category:    item.Category,
				LinePrice:   item.LinePrice,
			})
		}

		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
