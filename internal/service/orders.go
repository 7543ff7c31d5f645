package service

import (
	"context"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
)

// PlaceOrder сохраняет новый заказ. Нулевые цена и количество считаются незаполненными.
func (s *Service) PlaceOrder(ctx context.Context, in model.PlaceOrderInput) (*model.Order, error) {
	trim(&in.Title, &in.NoodleType)

	if err := s.check(in, MsgOrderFieldsRequired); err != nil {
		return nil, err
	}

	o, err := s.orders.CreateOrder(ctx, in.Title, in.Price, in.Quantity, in.NoodleType)
	if err != nil {
		return nil, newError(ErrPersistence, MsgPlaceOrderFailed, err)
	}

	return o, nil
}
