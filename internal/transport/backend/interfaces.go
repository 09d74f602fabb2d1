package backend

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/transport/dto"
)

type Client interface {
	ListCustomers(ctx context.Context) (*dto.Overview, error)
	ListLines(ctx context.Context, customerID int64) ([]dto.Line, error)
}
