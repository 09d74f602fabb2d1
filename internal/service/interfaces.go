package service

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, args repoargs.CustomerCreate) (*domain.Customer, error)
	Update(ctx context.Context, args repoargs.CustomerUpdate) (*domain.Customer, error)
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type LineRepository interface {
	Create(ctx context.Context, args repoargs.LineCreate) (*domain.BillableLine, error)
	BatchCreate(ctx context.Context, lines []repoargs.LineCreate, fn repoargs.LineBatchQueryRow)
	FindByID(ctx context.Context, id int64) (*domain.BillableLine, error)
	FindForUpdate(ctx context.Context, id int64) (*domain.BillableLine, error)
	List(ctx context.Context) ([]domain.BillableLine, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]domain.BillableLine, error)
	UpdateStatus(ctx context.Context, id int64, status domain.LineStatusType) (*domain.BillableLine, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error)
	ListByLineIDs(ctx context.Context, lineIDs []int64) ([]domain.Payment, error)
}
