package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/internal/service/tokens"
	"github.com/fsdevblog/tagihan/pkg/uow"
)

const JWTTokenExpire = 12 * time.Hour

type UserService struct {
	userRepo       UserRepository
	hasher         PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, err := uow.GetRepositoryAs[UserRepository](u, uow.RepositoryName(repoargs.UserRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &UserService{
		userRepo:       userRepo,
		hasher:         hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Username string
	Password string
	Role     domain.RoleType
}

// Register создает сотрудника. Пустая роль означает domain.RoleStaff. Занятый юзернейм дает
// domain.ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, error) {
	if args.Role == "" {
		args.Role = domain.RoleStaff
	}
	password, hashErr := s.hasher.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering user: %s", hashErr.Error())
	}

	user, err := s.userRepo.CreateUser(ctx, repoargs.CreateUser{
		Username: args.Username,
		Password: password,
		Role:     args.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}
	return user, nil
}

type LoginUserArgs struct {
	Username string
	Password string
}

// Login проверяет пару логин/пароль и выпускает jwt токен. Возвращает domain.ErrRecordNotFound или
// domain.ErrPasswordMissMatch при неверных данных.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, args.Username)
	if err != nil {
		return nil, "", fmt.Errorf("login: %w", err)
	}
	if !s.hasher.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("login: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, user.Role, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("login: %w", tokenErr)
	}
	return user, token, nil
}

// EnsureAdmin создает администратора username, если такого пользователя еще нет. Существующий
// пользователь не трогается. Возвращает true, если администратор был создан.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	_, findErr := s.userRepo.FindUserByUsername(ctx, username)
	if findErr == nil {
		return false, nil
	}
	if !errors.Is(findErr, domain.ErrRecordNotFound) {
		return false, fmt.Errorf("ensure admin: %w", findErr)
	}

	_, err := s.Register(ctx, RegisterUserArgs{Username: username, Password: password, Role: domain.RoleAdmin})
	if err != nil {
		// параллельный старт второго инстанса успел создать его раньше
		if errors.Is(err, domain.ErrDuplicateKey) {
			return false, nil
		}
		return false, fmt.Errorf("ensure admin: %w", err)
	}
	return true, nil
}
