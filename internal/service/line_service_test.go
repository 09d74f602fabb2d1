package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/internal/service/mocks"
	"github.com/fsdevblog/tagihan/pkg/uow"
	uowmocks "github.com/fsdevblog/tagihan/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type LineServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockLineRepo    *mocks.MockLineRepository
	mockPaymentRepo *mocks.MockPaymentRepository
	metrics         *Metrics
	service         *LineService
}

func TestLineServiceSuite(t *testing.T) {
	suite.Run(t, new(LineServiceTestSuite))
}

func (s *LineServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockLineRepo = mocks.NewMockLineRepository(s.mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(s.mockCtrl)

	// Репозитории вне транзакции, запрашиваются при инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.LineRepoName)).
		Return(s.mockLineRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()

	// Те же моки внутри транзакции.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.LineRepoName)).Return(s.mockLineRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).Return(s.mockPaymentRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(s.T().Context(), s.mockTX)
		},
	).AnyTimes()

	var err error
	s.metrics, err = NewMetrics(prometheus.NewRegistry())
	s.Require().NoError(err)

	s.service, err = NewLineService(s.mockUOW, s.metrics)
	s.Require().NoError(err)
}

func (s *LineServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectLockedLine настраивает блокировку строки с subtotal 100000 и двумя платежами на 50000.
func (s *LineServiceTestSuite) expectLockedLine(lineID int64, status domain.LineStatusType) {
	s.mockLineRepo.EXPECT().FindForUpdate(gomock.Any(), lineID).
		DoAndReturn(func(_ context.Context, id int64) (*domain.BillableLine, error) {
			return &domain.BillableLine{
				ID:         id,
				CustomerID: 1,
				Category:   domain.CategoryOrder,
				Subtotal:   100000,
				Status:     status,
			}, nil
		}).AnyTimes()
	s.mockPaymentRepo.EXPECT().ListByLineIDs(gomock.Any(), []int64{lineID}).
		Return([]domain.Payment{
			{ID: 1, LineID: lineID, Amount: 30000},
			{ID: 2, LineID: lineID, Amount: 20000},
		}, nil).AnyTimes()
}

func (s *LineServiceTestSuite) TestRecordPayment() {
	var lineID int64 = 10
	actor := domain.Actor{UserID: 3, Role: domain.RoleStaff}
	paidOn := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	s.expectLockedLine(lineID, domain.LineStatusActive)
	s.mockLineRepo.EXPECT().FindForUpdate(gomock.Any(), int64(404)).
		Return(nil, domain.ErrRecordNotFound).AnyTimes()

	// Сохраняться должен только принятый платеж.
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
			s.Equal(lineID, args.LineID)
			s.Equal(domain.Amount(50000), args.Amount)
			s.Equal(actor.UserID, args.RecordedBy)
			s.Equal(paidOn, args.PaidOn)
			return &domain.Payment{ID: 3, LineID: args.LineID, Amount: args.Amount, PaidOn: args.PaidOn}, nil
		}).Times(1)

	cases := []struct {
		name            string
		lineID          int64
		amount          any
		wantErr         error
		wantOutstanding domain.Amount
	}{
		{name: "one over outstanding", lineID: lineID, amount: 50001, wantErr: domain.ErrExceedsOutstanding, wantOutstanding: 50000},
		{name: "zero", lineID: lineID, amount: "0", wantErr: domain.ErrNonPositiveAmount},
		{name: "negative", lineID: lineID, amount: "-10", wantErr: domain.ErrNonPositiveAmount},
		{name: "line not found", lineID: 404, amount: 1, wantErr: domain.ErrRecordNotFound},
		{name: "full settlement", lineID: lineID, amount: "50.000"},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := s.service.RecordPayment(s.T().Context(), RecordPaymentArgs{
				LineID: t.lineID,
				Amount: t.amount,
				PaidOn: paidOn,
				Actor:  actor,
			})
			if t.wantErr != nil {
				s.Require().ErrorIs(err, t.wantErr)
				var exceeds *domain.ExceedsOutstandingError
				if errors.As(err, &exceeds) {
					s.Equal(t.wantOutstanding, exceeds.Outstanding)
				}
				return
			}
			s.Require().NoError(err)
			s.Equal(domain.Amount(50000), res.Payment.Amount)
			s.Len(res.Line.Payments, 3)
			s.Equal(domain.Amount(0), res.Balance.Outstanding)
			s.True(res.Balance.IsSettled)
		})
	}

	s.InDelta(1, testutil.ToFloat64(s.metrics.payments.WithLabelValues(PaymentOutcomeAccepted)), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.payments.WithLabelValues(PaymentOutcomeExceeds)), 0)
	s.InDelta(2, testutil.ToFloat64(s.metrics.payments.WithLabelValues(PaymentOutcomeNonPositive)), 0)
	s.InDelta(1, testutil.ToFloat64(s.metrics.payments.WithLabelValues(PaymentOutcomeError)), 0)
	s.InDelta(50000, testutil.ToFloat64(s.metrics.paidAmount), 0)
}

func (s *LineServiceTestSuite) TestRecordPayment_ClosedLine() {
	s.expectLockedLine(11, domain.LineStatusCancelled)

	_, err := s.service.RecordPayment(s.T().Context(), RecordPaymentArgs{LineID: 11, Amount: 100})
	s.Require().ErrorIs(err, domain.ErrLineClosed)
	s.InDelta(1, testutil.ToFloat64(s.metrics.payments.WithLabelValues(PaymentOutcomeLineClosed)), 0)
}

func (s *LineServiceTestSuite) TestComplete_Unpaid() {
	s.expectLockedLine(12, domain.LineStatusActive)

	_, err := s.service.Complete(s.T().Context(), 12)
	s.Require().ErrorIs(err, domain.ErrInsufficientPayment)

	var insufficient *domain.InsufficientPaymentError
	s.Require().ErrorAs(err, &insufficient)
	s.Equal(domain.Amount(50000), insufficient.Outstanding)
}

func (s *LineServiceTestSuite) TestComplete_Paid() {
	var lineID int64 = 13
	s.mockLineRepo.EXPECT().FindForUpdate(gomock.Any(), lineID).
		Return(&domain.BillableLine{ID: lineID, Subtotal: 5000, Status: domain.LineStatusActive}, nil)
	s.mockPaymentRepo.EXPECT().ListByLineIDs(gomock.Any(), []int64{lineID}).
		Return([]domain.Payment{{ID: 1, LineID: lineID, Amount: 5000}}, nil)
	s.mockLineRepo.EXPECT().UpdateStatus(gomock.Any(), lineID, domain.LineStatusCompleted).
		Return(&domain.BillableLine{ID: lineID, Subtotal: 5000, Status: domain.LineStatusCompleted}, nil)

	line, err := s.service.Complete(s.T().Context(), lineID)
	s.Require().NoError(err)
	s.Equal(domain.LineStatusCompleted, line.Status)
	s.Len(line.Payments, 1)
}

func (s *LineServiceTestSuite) TestCancel() {
	var lineID int64 = 14
	s.expectLockedLine(lineID, domain.LineStatusActive)
	s.mockLineRepo.EXPECT().UpdateStatus(gomock.Any(), lineID, domain.LineStatusCancelled).
		Return(&domain.BillableLine{ID: lineID, Subtotal: 100000, Status: domain.LineStatusCancelled}, nil).
		Times(1)

	s.Run("staff is forbidden", func() {
		_, err := s.service.Cancel(s.T().Context(), lineID, domain.Actor{UserID: 2, Role: domain.RoleStaff})
		s.Require().ErrorIs(err, domain.ErrForbidden)
	})

	s.Run("admin cancels", func() {
		line, err := s.service.Cancel(s.T().Context(), lineID, domain.Actor{UserID: 1, Role: domain.RoleAdmin})
		s.Require().NoError(err)
		s.Equal(domain.LineStatusCancelled, line.Status)
	})
}

func (s *LineServiceTestSuite) TestCreate() {
	var customerID int64 = 5
	lines := []CreateLineArgs{
		{Description: "Seal 40mm", Category: domain.CategoryOrder, Quantity: 3, UnitPrice: 10000, Discount: 5000},
		{Description: "O-ring", Category: domain.CategoryDaily, Quantity: 1, UnitPrice: 2000, Discount: 5000},
	}

	s.mockLineRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, args []repoargs.LineCreate, fn repoargs.LineBatchQueryRow) {
			s.Require().Len(args, 2)
			s.Equal(domain.Amount(25000), args[0].Subtotal)
			s.Equal(domain.Amount(0), args[1].Subtotal)
			for i, a := range args {
				s.Equal(customerID, a.CustomerID)
				fn(i, &domain.BillableLine{
					ID:         int64(i + 1),
					CustomerID: a.CustomerID,
					Subtotal:   a.Subtotal,
					Status:     domain.LineStatusActive,
				}, nil)
			}
		})

	created, err := s.service.Create(s.T().Context(), customerID, lines)
	s.Require().NoError(err)
	s.Require().Len(created, 2)
	s.Equal(int64(1), created[0].ID)
	s.Empty(created[0].Payments)
}

func (s *LineServiceTestSuite) TestCreate_BatchError() {
	s.mockLineRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, args []repoargs.LineCreate, fn repoargs.LineBatchQueryRow) {
			fn(0, nil, domain.ErrRecordNotFound)
		})

	_, err := s.service.Create(s.T().Context(), 99, []CreateLineArgs{{Quantity: 1, UnitPrice: 1}})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *LineServiceTestSuite) TestCreate_SubtotalOutOfRange() {
	s.mockLineRepo.EXPECT().BatchCreate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := s.service.Create(s.T().Context(), 5, []CreateLineArgs{
		{Description: "Seal 40mm", Category: domain.CategoryOrder, Quantity: 1, UnitPrice: 10000},
		{Description: "Pump", Category: domain.CategoryOrder, Quantity: 4_000_000_000, UnitPrice: 4_000_000_000},
	})
	s.Require().ErrorIs(err, domain.ErrAmountOutOfRange)
}

func (s *LineServiceTestSuite) TestGet() {
	s.mockLineRepo.EXPECT().FindByID(gomock.Any(), int64(20)).
		Return(&domain.BillableLine{ID: 20, Subtotal: 100}, nil)
	s.mockPaymentRepo.EXPECT().ListByLineIDs(gomock.Any(), []int64{20}).
		Return([]domain.Payment{{LineID: 20, Amount: 40}}, nil)

	line, err := s.service.Get(s.T().Context(), 20)
	s.Require().NoError(err)
	s.Len(line.Payments, 1)
}
