package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
)

// CreateOrder сохраняет новый заказ и возвращает его вместе с присвоенным идентификатором.
func (r *PostgresRepository) CreateOrder(ctx context.Context, title string, price decimal.Decimal, quantity int, noodleType string) (*model.Order, error) {
	var o model.Order
	err := r.pool.QueryRow(ctx,
		`INSERT INTO orders (title, price, quantity, noodle_type)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, price, quantity, noodle_type, created_at`,
		title, price, quantity, noodleType,
	).Scan(&o.ID, &o.Title, &o.Price, &o.Quantity, &o.NoodleType, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &o, nil
}
