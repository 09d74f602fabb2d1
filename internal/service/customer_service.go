package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
)

type CustomerService struct {
	customerRepo CustomerRepository
}

func NewCustomerService(u uow.UOW) (*CustomerService, error) {
	repo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &CustomerService{customerRepo: repo}, nil
}

type CustomerArgs struct {
	Name    string
	Phone   string
	Address string
}

// Create создает клиента. Если клиент с таким именем уже есть, возвращает domain.ErrDuplicateKey без
// обращения к вставке. Проверка по списку лишь подсказка, окончательно уникальность держит индекс.
func (s *CustomerService) Create(ctx context.Context, args CustomerArgs) (*domain.Customer, error) {
	args = normalizeCustomerArgs(args)
	if err := s.checkDuplicateName(ctx, args.Name, 0); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	customer, err := s.customerRepo.Create(ctx, repoargs.CustomerCreate{
		Name:    args.Name,
		Phone:   args.Phone,
		Address: args.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

// Update обновляет данные клиента id. Имя проверяется на дубликаты среди остальных клиентов.
func (s *CustomerService) Update(ctx context.Context, id int64, args CustomerArgs) (*domain.Customer, error) {
	args = normalizeCustomerArgs(args)
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	if err := s.checkDuplicateName(ctx, args.Name, id); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	customer, err := s.customerRepo.Update(ctx, repoargs.CustomerUpdate{
		ID:      id,
		Name:    args.Name,
		Phone:   args.Phone,
		Address: args.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}
	return customer, nil
}

func (s *CustomerService) checkDuplicateName(ctx context.Context, name string, excludeID int64) error {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return err //nolint:wrapcheck
	}
	if billing.IsDuplicateName(customers, name, excludeID) {
		return fmt.Errorf("customer name `%s`: %w", name, domain.ErrDuplicateKey)
	}
	return nil
}

func normalizeCustomerArgs(args CustomerArgs) CustomerArgs {
	return CustomerArgs{
		Name:    strings.TrimSpace(args.Name),
		Phone:   strings.TrimSpace(args.Phone),
		Address: strings.TrimSpace(args.Address),
	}
}
