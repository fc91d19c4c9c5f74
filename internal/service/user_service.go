package service

import (
	"context"
	"errors"

	"qrorder/internal/domain"
)

const defaultLanguage = "ko"

type UserService struct {
	identity IdentityRepository
}

func NewUserService(identity IdentityRepository) *UserService {
	return &UserService{identity: identity}
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	user, err := s.identity.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, err)
		}
		return nil, err
	}
	return user, nil
}

// PreferredLanguage returns the language code of the user's country, which
// drives the default menu translation language.
func (s *UserService) PreferredLanguage(ctx context.Context, id int) (string, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if user.LanguageCode == "" {
		return defaultLanguage, nil
	}
	return user.LanguageCode, nil
}

func (s *UserService) ListCountries(ctx context.Context) ([]domain.Country, error) {
	return s.identity.ListCountries(ctx)
}

var _ UserServiceInterface = (*UserService)(nil)
