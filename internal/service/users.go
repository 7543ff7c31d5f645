package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sulemanmukati/MongodbUserAuth/internal/model"
	"github.com/sulemanmukati/MongodbUserAuth/internal/repository"
)

// ListUsers возвращает всех пользователей без фильтрации и пагинации.
func (s *Service) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		return nil, newError(ErrPersistence, MsgFetchUsersFailed, err)
	}
	return users, nil
}

// UpdateUser перезаписывает имя, фамилию и почту пользователя.
func (s *Service) UpdateUser(ctx context.Context, id string, in model.UpdateUserInput) (*model.User, error) {
	trim(&in.FirstName, &in.LastName, &in.Email)

	if err := s.check(in, MsgUserFieldsRequired); err != nil {
		return nil, err
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, newError(ErrNotFound, MsgUserNotFound, err)
	}

	u, err := s.users.UpdateUser(ctx, uid, in.FirstName, in.LastName, in.Email)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, newError(ErrNotFound, MsgUserNotFound, err)
		case errors.Is(err, repository.ErrUserExists):
			return nil, newError(ErrConflict, MsgEmailExists, err)
		}
		return nil, newError(ErrPersistence, MsgUpdateUserFailed, err)
	}

	return u, nil
}

// DeleteUser безвозвратно удаляет пользователя.
func (s *Service) DeleteUser(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return newError(ErrNotFound, MsgUserNotFound, err)
	}

	if err := s.users.DeleteUser(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return newError(ErrNotFound, MsgUserNotFound, err)
		}
		return newError(ErrPersistence, MsgDeleteUserFailed, err)
	}

	return nil
}
