package service

import (
	"context"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
)

// ReceivablesService собирает клиентов, строки и платежи и прогоняет их через расчетное ядро.
type ReceivablesService struct {
	customerRepo CustomerRepository
	lineRepo     LineRepository
	paymentRepo  PaymentRepository
}

func NewReceivablesService(u uow.UOW) (*ReceivablesService, error) {
	customerRepo, err := uow.GetRepositoryAs[CustomerRepository](u, uow.RepositoryName(repoargs.CustomerRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	lineRepo, err := uow.GetRepositoryAs[LineRepository](u, uow.RepositoryName(repoargs.LineRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &ReceivablesService{
		customerRepo: customerRepo,
		lineRepo:     lineRepo,
		paymentRepo:  paymentRepo,
	}, nil
}

type Overview struct {
	WithReceivables    []domain.Customer
	WithoutReceivables []domain.Customer
	Outstanding        map[int64]domain.Amount
	Summary            billing.Summary
}

// Overview сводка по всем клиентам: сначала должники, потом остальные, каждая группа по имени.
func (s *ReceivablesService) Overview(ctx context.Context) (*Overview, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("receivables overview: %w", err)
	}
	lines, err := s.lineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("receivables overview: %w", err)
	}
	if err = s.attachPayments(ctx, lines); err != nil {
		return nil, fmt.Errorf("receivables overview: %w", err)
	}

	customers = attachLines(customers, lines)
	with, without := billing.PartitionByHasReceivables(customers)
	return &Overview{
		WithReceivables:    with,
		WithoutReceivables: without,
		Outstanding:        billing.OutstandingByCustomer(customers),
		Summary:            billing.Summarize(customers),
	}, nil
}

type LineBalance struct {
	Line    domain.BillableLine
	Balance billing.Balance
}

type Statement struct {
	Customer domain.Customer
	Category domain.CategoryType
	Lines    []LineBalance
	Total    domain.Amount
}

// Statement что клиент еще должен: открытые строки категории category (пустая означает любую)
// с остатком по каждой.
func (s *ReceivablesService) Statement(
	ctx context.Context,
	customerID int64,
	category domain.CategoryType,
) (*Statement, error) {
	customer, lines, err := s.customerWithLines(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer statement: %w", err)
	}

	open := billing.FilterByCategory(lines, category)
	st := Statement{
		Customer: *customer,
		Category: category,
		Lines:    make([]LineBalance, len(open)),
	}
	for i, l := range open {
		b := billing.Calculate(l)
		st.Lines[i] = LineBalance{Line: l, Balance: b}
		st.Total += b.Outstanding
	}
	return &st, nil
}

// Lines все строки клиента с платежами, без фильтрации.
func (s *ReceivablesService) Lines(ctx context.Context, customerID int64) ([]domain.BillableLine, error) {
	_, lines, err := s.customerWithLines(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer lines: %w", err)
	}
	return lines, nil
}

func (s *ReceivablesService) customerWithLines(
	ctx context.Context,
	customerID int64,
) (*domain.Customer, []domain.BillableLine, error) {
	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	lines, err := s.lineRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}
	if err = s.attachPayments(ctx, lines); err != nil {
		return nil, nil, err
	}
	customer.Lines = lines
	return customer, lines, nil
}

// attachPayments подгружает платежи одним запросом и раскладывает их по строкам.
func (s *ReceivablesService) attachPayments(ctx context.Context, lines []domain.BillableLine) error {
	ids := make([]int64, len(lines))
	for i, l := range lines {
		ids[i] = l.ID
	}
	payments, err := s.paymentRepo.ListByLineIDs(ctx, ids)
	if err != nil {
		return err //nolint:wrapcheck
	}

	byLine := make(map[int64][]domain.Payment, len(lines))
	for _, p := range payments {
		byLine[p.LineID] = append(byLine[p.LineID], p)
	}
	for i := range lines {
		lines[i].Payments = byLine[lines[i].ID]
		if lines[i].Payments == nil {
			lines[i].Payments = []domain.Payment{}
		}
	}
	return nil
}

func attachLines(customers []domain.Customer, lines []domain.BillableLine) []domain.Customer {
	byCustomer := make(map[int64][]domain.BillableLine, len(customers))
	for _, l := range lines {
		byCustomer[l.CustomerID] = append(byCustomer[l.CustomerID], l)
	}
	res := make([]domain.Customer, len(customers))
	for i, c := range customers {
		c.Lines = byCustomer[c.ID]
		res[i] = c
	}
	return res
}
