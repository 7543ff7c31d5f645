// Package model содержит доменные сущности сервиса заказов лапши.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User представляет учётную запись покупателя.
// Хэш пароля никогда не сериализуется в JSON.
type User struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Order описывает оформленный заказ.
type Order struct {
	ID         uuid.UUID       `json:"id"`
	Title      string          `json:"title"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
	NoodleType string          `json:"noodleType"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RegisterInput содержит данные для регистрации пользователя.
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email_address"`
	Password  string `json:"password" validate:"required,password_bytes"`
}

// LoginInput содержит учётные данные для входа.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserInput содержит изменяемые поля пользователя.
type UpdateUserInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email_address"`
}

// PlaceOrderInput содержит данные нового заказа. Количество ограничено
// колонкой INTEGER.
type PlaceOrderInput struct {
	Title      string          `json:"title" validate:"required"`
	Price      decimal.Decimal `json:"price" validate:"required,gt=0"`
	Quantity   int             `json:"quantity" validate:"required,gt=0,max=2147483647"`
	NoodleType string          `json:"noodleType" validate:"required"`
}

func init() {
	// Клиенты ожидают цену заказа числом, а не строкой.
	decimal.MarshalJSONWithoutQuotes = true
}
