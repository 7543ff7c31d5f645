package service

import (
	"context"
	"errors"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
	"github.com/sulemanmukati/MongodbUserAuth/internal/repository"
)

// Login проверяет почту и пароль. Неизвестная почта и неверный пароль дают
// одну и ту же ошибку. Токен сессии не выдаётся.
func (s *Service) Login(ctx context.Context, in model.LoginInput) error {
	trim(&in.Email)

	if err := s.check(in, MsgLoginFieldsRequired); err != nil {
		return err
	}

	u, err := s.users.GetUserByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.hasher.Check(in.Password, s.placeholderHash())
			return errInvalidCredentials
		}
		return newError(ErrPersistence, MsgLoginFailed, err)
	}

	if !s.hasher.Check(in.Password, u.PasswordHash) {
		return errInvalidCredentials
	}

	return nil
}

func (s *Service) placeholderHash() string {
	s.dummyOnce.Do(func() {
		// При ошибке остаётся пустая строка: Check просто вернёт false быстрее.
		s.dummyHash, _ = s.hasher.Hash("placeholder-password")
	})
	return s.dummyHash
}
