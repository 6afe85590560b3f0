package service

import (
	"ParaVault/internal/model"
	"ParaVault/internal/repo"
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Username  string `json:"username" validate:"required,max=150"`
	Password  string `json:"password" validate:"required,max=72"`
	Email     string `json:"email" validate:"omitempty,email,max=254"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
}

// ProfilePatch — частичное обновление профиля. Логин и id не меняются.
type ProfilePatch struct {
	Email     *string `json:"email" validate:"omitnil,email,max=254"`
	FirstName *string `json:"first_name" validate:"omitnil,max=150"`
	LastName  *string `json:"last_name" validate:"omitnil,max=150"`
}

// UserService — регистрация, проверка учётных данных и профиль.
type UserService struct {
	repo   repo.UserRepository
	logger *zap.SugaredLogger
}

func NewUserService(r repo.UserRepository, logger *zap.SugaredLogger) *UserService {
	return &UserService{repo: r, logger: logger}
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := validateStruct(in); err != nil {
		s.logger.Warnw("register rejected", "username", in.Username, "err", err)
		return nil, err
	}

	existing, err := s.repo.GetUserByLogin(ctx, in.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrLoginTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, validationError("password is too long")
		}
		return nil, err
	}

	user := &model.User{
		Username:  in.Username,
		Password:  string(hash),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	created, err := s.repo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrLoginTaken
		}
		return nil, err
	}
	return created, nil
}

// Login проверяет пару логин/пароль.
func (s *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByLogin(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) Profile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}

// UpdateProfile применяет только переданные поля.
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, patch ProfilePatch) (*model.User, error) {
	patch.Email = trimPtr(patch.Email)
	check := patch
	// пустая строка очищает email и не проверяется на формат
	if check.Email != nil && *check.Email == "" {
		check.Email = nil
	}
	if err := validateStruct(check); err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.FirstName != nil {
		updates["first_name"] = *patch.FirstName
	}
	if patch.LastName != nil {
		updates["last_name"] = *patch.LastName
	}

	user, err := s.repo.UpdateUser(ctx, userID, updates)
	if err != nil {
		return nil, notFound(err)
	}
	return user, nil
}
