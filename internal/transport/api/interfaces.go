package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type CustomerServicer interface {
	Create(ctx context.Context, args service.CustomerArgs) (*domain.Customer, error)
	Update(ctx context.Context, id int64, args service.CustomerArgs) (*domain.Customer, error)
}

type LineServicer interface {
	Get(ctx context.Context, lineID int64) (*domain.BillableLine, error)
	Create(ctx context.Context, customerID int64, args []service.CreateLineArgs) ([]domain.BillableLine, error)
	RecordPayment(ctx context.Context, args service.RecordPaymentArgs) (*service.PaymentResult, error)
	Complete(ctx context.Context, lineID int64) (*domain.BillableLine, error)
	Cancel(ctx context.Context, lineID int64, actor domain.Actor) (*domain.BillableLine, error)
}

type ReceivablesServicer interface {
	Overview(ctx context.Context) (*service.Overview, error)
	Statement(ctx context.Context, customerID int64, category domain.CategoryType) (*service.Statement, error)
	Lines(ctx context.Context, customerID int64) ([]domain.BillableLine, error)
}
