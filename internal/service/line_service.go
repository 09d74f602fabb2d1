package service

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
)

type LineService struct {
	uow         uow.UOW
	lineRepo    LineRepository
	paymentRepo PaymentRepository
	metrics     *Metrics
}

func NewLineService(u uow.UOW, m *Metrics) (*LineService, error) {
	lineRepo, err := uow.GetRepositoryAs[LineRepository](u, uow.RepositoryName(repoargs.LineRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	paymentRepo, err := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &LineService{
		uow:         u,
		lineRepo:    lineRepo,
		paymentRepo: paymentRepo,
		metrics:     m,
	}, nil
}

// Get возвращает строку вместе с платежами.
func (s *LineService) Get(ctx context.Context, lineID int64) (*domain.BillableLine, error) {
	line, err := s.lineRepo.FindByID(ctx, lineID)
	if err != nil {
		return nil, fmt.Errorf("getting line: %w", err)
	}
	payments, err := s.paymentRepo.ListByLineIDs(ctx, []int64{lineID})
	if err != nil {
		return nil, fmt.Errorf("getting payments of line %d: %w", lineID, err)
	}
	line.Payments = payments
	return line, nil
}

type CreateLineArgs struct {
	Description string
	Category    domain.CategoryType
	Quantity    int64
	UnitPrice   domain.Amount
	Discount    domain.Amount
}

func (a CreateLineArgs) toRepoArgs(customerID int64) (repoargs.LineCreate, error) {
	subtotal, err := billing.LineSubtotal(a.Quantity, a.UnitPrice, a.Discount)
	if err != nil {
		return repoargs.LineCreate{}, err //nolint:wrapcheck
	}
	return repoargs.LineCreate{
		CustomerID:  customerID,
		Description: a.Description,
		Category:    a.Category,
		Quantity:    a.Quantity,
		UnitPrice:   a.UnitPrice,
		Discount:    a.Discount,
		Subtotal:    subtotal,
	}, nil
}

// Create создает строки заказа клиента customerID одной транзакцией. Subtotal каждой строки считается
// здесь же, переполнение суммы отклоняет весь пакет до открытия транзакции. Если хотя бы одна строка
// не вставилась, откатываются все, возвращается последняя ошибка.
func (s *LineService) Create(
	ctx context.Context,
	customerID int64,
	lines []CreateLineArgs,
) ([]domain.BillableLine, error) {
	if len(lines) == 0 {
		return []domain.BillableLine{}, nil
	}

	var args = make([]repoargs.LineCreate, len(lines))
	for i, l := range lines {
		a, err := l.toRepoArgs(customerID)
		if err != nil {
			return nil, fmt.Errorf("line %d of customer %d: %w", i, customerID, err)
		}
		args[i] = a
	}

	var created = make([]domain.BillableLine, len(lines))
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		lineRepo, repoErr := uow.GetAs[LineRepository](tx, uow.RepositoryName(repoargs.LineRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}

		var batchErr error
		lineRepo.BatchCreate(c, args, func(i int, line *domain.BillableLine, err error) {
			if err != nil {
				batchErr = err
				return
			}
			line.Payments = []domain.Payment{}
			created[i] = *line
		})
		return batchErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("creating lines for customer %d: %w", customerID, txErr)
	}
	return created, nil
}

type RecordPaymentArgs struct {
	LineID int64
	// Amount сырое значение из запроса, разбирается billing.ParseSigned.
	Amount any
	PaidOn time.Time
	Actor  domain.Actor
}

type PaymentResult struct {
	Payment domain.Payment
	Line    domain.BillableLine
	Balance billing.Balance
}

// RecordPayment записывает платеж по строке. Строка блокируется до конца транзакции, так что два
// одновременных платежа не могут вместе превысить остаток: второй увидит уже записанный первый.
//
// Ошибки: domain.ErrNonPositiveAmount, domain.ErrLineClosed, *domain.ExceedsOutstandingError,
// domain.ErrRecordNotFound если строки нет.
func (s *LineService) RecordPayment(ctx context.Context, args RecordPaymentArgs) (*PaymentResult, error) {
	var result PaymentResult
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		line, lineErr := s.lockLineWithPayments(c, tx, args.LineID)
		if lineErr != nil {
			return lineErr
		}

		payment, rejectErr := billing.RecordPayment(*line, args.Amount, args.PaidOn)
		if rejectErr != nil {
			return rejectErr //nolint:wrapcheck
		}

		paymentRepo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		saved, saveErr := paymentRepo.Create(c, repoargs.PaymentCreate{
			LineID:     payment.LineID,
			Amount:     payment.Amount,
			PaidOn:     payment.PaidOn,
			RecordedBy: args.Actor.UserID,
		})
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}

		line.Payments = append(line.Payments, *saved)
		result = PaymentResult{
			Payment: *saved,
			Line:    *line,
			Balance: billing.Calculate(*line),
		}
		return nil
	})

	s.metrics.observePayment(result.Payment.Amount, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("recording payment for line %d: %w", args.LineID, txErr)
	}
	return &result, nil
}

// Complete помечает строку выполненной. Требует полного погашения, иначе *domain.InsufficientPaymentError.
func (s *LineService) Complete(ctx context.Context, lineID int64) (*domain.BillableLine, error) {
	return s.transition(ctx, lineID, domain.LineStatusCompleted)
}

// Cancel отменяет строку. Доступно только администратору, иначе domain.ErrForbidden.
func (s *LineService) Cancel(ctx context.Context, lineID int64, actor domain.Actor) (*domain.BillableLine, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("cancelling line %d by user %d: %w", lineID, actor.UserID, domain.ErrForbidden)
	}
	return s.transition(ctx, lineID, domain.LineStatusCancelled)
}

func (s *LineService) transition(
	ctx context.Context,
	lineID int64,
	target domain.LineStatusType,
) (*domain.BillableLine, error) {
	var updated domain.BillableLine
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		line, lineErr := s.lockLineWithPayments(c, tx, lineID)
		if lineErr != nil {
			return lineErr
		}

		next, rejectErr := billing.Transition(*line, target)
		if rejectErr != nil {
			return rejectErr //nolint:wrapcheck
		}

		lineRepo, repoErr := uow.GetAs[LineRepository](tx, uow.RepositoryName(repoargs.LineRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		saved, saveErr := lineRepo.UpdateStatus(c, lineID, next.Status)
		if saveErr != nil {
			return saveErr //nolint:wrapcheck
		}
		saved.Payments = line.Payments
		updated = *saved
		return nil
	})

	s.metrics.observeTransition(target, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("moving line %d to %s: %w", lineID, target, txErr)
	}
	return &updated, nil
}

// lockLineWithPayments блокирует строку и подгружает ее платежи.
func (s *LineService) lockLineWithPayments(ctx context.Context, tx uow.TX, lineID int64) (*domain.BillableLine, error) {
	lineRepo, repoErr := uow.GetAs[LineRepository](tx, uow.RepositoryName(repoargs.LineRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}
	paymentRepo, repoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
	if repoErr != nil {
		return nil, repoErr //nolint:wrapcheck
	}

	line, err := lineRepo.FindForUpdate(ctx, lineID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	payments, err := paymentRepo.ListByLineIDs(ctx, []int64{lineID})
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	line.Payments = payments
	return line, nil
}
