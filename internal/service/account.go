package service

import (
	"context"
	"errors"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
	"github.com/sulemanmukati/MongodbUserAuth/internal/repository"
)

// Register регистрирует нового пользователя. Возвращённая запись содержит хэш
// пароля; поле не сериализуется в JSON.
func (s *Service) Register(ctx context.Context, in model.RegisterInput) (*model.User, error) {
	trim(&in.FirstName, &in.LastName, &in.Email)

	if err := s.check(in, MsgFillAllFields); err != nil {
		return nil, err
	}

	_, err := s.users.GetUserByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, newError(ErrConflict, MsgEmailExists, nil)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, newError(ErrPersistence, MsgCreateUserFailed, err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, newError(ErrPersistence, MsgCreateUserFailed, err)
	}

	u, err := s.users.CreateUser(ctx, in.FirstName, in.LastName, in.Email, hash)
	if err != nil {
		// Параллельная регистрация могла пройти предварительную проверку.
		if errors.Is(err, repository.ErrUserExists) {
			return nil, newError(ErrConflict, MsgEmailExists, err)
		}
		return nil, newError(ErrPersistence, MsgCreateUserFailed, err)
	}

	return u, nil
}
