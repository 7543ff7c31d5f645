// Package service реализует бизнес-логику сервиса заказов лапши.
package service

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
	"github.com/sulemanmukati/MongodbUserAuth/internal/validation"
)

// UserStore описывает хранилище пользователей.
type UserStore interface {
	CreateUser(ctx context.Context, firstName, lastName, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// OrderStore описывает хранилище заказов.
type OrderStore interface {
	CreateOrder(ctx context.Context, title string, price decimal.Decimal, quantity int, noodleType string) (*model.Order, error)
}

// PasswordHasher хэширует пароли и сверяет их с сохранённым хэшем.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// Service содержит бизнес-логику учётных записей и заказов.
type Service struct {
	users     UserStore
	orders    OrderStore
	hasher    PasswordHasher
	validator *validation.Validator

	// dummyHash сверяется при входе с неизвестной почтой, чтобы время ответа
	// не выдавало существование пользователя.
	dummyOnce sync.Once
	dummyHash string
}

// NewService создаёт сервис с указанными хранилищами и хэшером паролей.
func NewService(users UserStore, orders OrderStore, hasher PasswordHasher) *Service {
	return &Service{
		users:     users,
		orders:    orders,
		hasher:    hasher,
		validator: validation.New(),
	}
}

func (s *Service) check(in any, missingMsg string) error {
	problem, err := s.validator.Check(in)
	if err != nil {
		return newError(ErrValidation, missingMsg, err)
	}

	switch problem {
	case validation.ProblemMissing:
		return newError(ErrValidation, missingMsg, nil)
	case validation.ProblemMalformedEmail:
		return newError(ErrValidation, MsgInvalidEmail, nil)
	case validation.ProblemPasswordTooLong:
		return newError(ErrValidation, MsgPasswordTooLong, nil)
	case validation.ProblemOutOfRange:
		return newError(ErrValidation, MsgOrderOutOfRange, nil)
	}
	return nil
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}
