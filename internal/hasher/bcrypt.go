// Package hasher содержит хэширование паролей на основе bcrypt.
package hasher

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost задаёт фиксированную стоимость bcrypt для всех паролей.
const DefaultCost = 12

// Bcrypt хэширует и проверяет пароли с солью.
type Bcrypt struct {
	cost int
}

// NewBcrypt создаёт хэшер с указанной стоимостью. Значения вне допустимого
// диапазона bcrypt заменяются на DefaultCost.
func NewBcrypt(cost int) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash возвращает bcrypt-хэш пароля.
func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("generate hash: %w", err)
	}
	return string(hash), nil
}

// Check сообщает, соответствует ли пароль сохранённому хэшу.
func (b *Bcrypt) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
