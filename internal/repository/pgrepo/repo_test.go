package pgrepo

import (
	"reflect"
	"testing"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
)

// fakeRow отдает заранее заданные значения в Scan.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.values[i]))
	}
	return nil
}

type RepositoryTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	mockDB   *mocks.MockDBTX
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositoryTestSuite))
}

func (s *RepositoryTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDB = mocks.NewMockDBTX(s.mockCtrl)
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *RepositoryTestSuite) TestCustomerFindByID() {
	now := time.Now()
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(1)).
		Return(fakeRow{values: []any{int64(1), now, now, "Toko Sinar", "0812", "Jl. Merdeka"}})
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(2)).
		Return(fakeRow{err: pgx.ErrNoRows})

	repo := NewCustomerRepository(s.mockDB)

	c, err := repo.FindByID(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Equal("Toko Sinar", c.Name)
	s.Equal("Jl. Merdeka", c.Address)

	_, err = repo.FindByID(s.T().Context(), 2)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestCustomerCreateDuplicate() {
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "Toko", "", "").
		Return(fakeRow{err: &pgconn.PgError{Code: uniqueViolationCode}})

	_, err := NewCustomerRepository(s.mockDB).Create(s.T().Context(), repoargs.CustomerCreate{Name: "Toko"})
	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *RepositoryTestSuite) TestLineUpdateStatus() {
	now := time.Now()
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(9), "CANCELLED").
		Return(fakeRow{values: []any{
			int64(9), now, now, int64(3), "Seal 40mm", "order",
			int64(2), int64(15000), int64(0), int64(30000), "CANCELLED",
		}})

	line, err := NewLineRepository(s.mockDB).UpdateStatus(s.T().Context(), 9, domain.LineStatusCancelled)
	s.Require().NoError(err)
	s.Equal(domain.LineStatusCancelled, line.Status)
	s.Equal(domain.CategoryOrder, line.Category)
	s.Equal(domain.Amount(30000), line.Subtotal)
	s.Equal(int64(3), line.CustomerID)
}

func (s *RepositoryTestSuite) TestLineCreateUnknownCustomer() {
	s.mockDB.EXPECT().
		QueryRow(gomock.Any(), gomock.Any(), int64(77), "x", "daily", int64(1), int64(10), int64(0), int64(10)).
		Return(fakeRow{err: &pgconn.PgError{Code: foreignKeyViolationCode}})

	_, err := NewLineRepository(s.mockDB).Create(s.T().Context(), repoargs.LineCreate{
		CustomerID:  77,
		Description: "x",
		Category:    domain.CategoryDaily,
		Quantity:    1,
		UnitPrice:   10,
		Subtotal:    10,
	})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *RepositoryTestSuite) TestPaymentCreate() {
	now := time.Now()
	paidOn := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), int64(4), int64(5000), paidOn, int64(1)).
		Return(fakeRow{values: []any{int64(11), now, int64(4), int64(5000), paidOn, int64(1)}})

	p, err := NewPaymentRepository(s.mockDB).Create(s.T().Context(), repoargs.PaymentCreate{
		LineID:     4,
		Amount:     5000,
		PaidOn:     paidOn,
		RecordedBy: 1,
	})
	s.Require().NoError(err)
	s.Equal(int64(11), p.ID)
	s.Equal(domain.Amount(5000), p.Amount)
	s.Equal(paidOn, p.PaidOn)
}

func (s *RepositoryTestSuite) TestPaymentListByLineIDs_Empty() {
	// база не должна вызываться
	s.mockDB.EXPECT().Query(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	payments, err := NewPaymentRepository(s.mockDB).ListByLineIDs(s.T().Context(), nil)
	s.Require().NoError(err)
	s.Empty(payments)
}

func (s *RepositoryTestSuite) TestUserFindByUsername() {
	now := time.Now()
	s.mockDB.EXPECT().QueryRow(gomock.Any(), gomock.Any(), "admin").
		Return(fakeRow{values: []any{int64(1), now, now, "admin", "hash", "admin"}})

	u, err := NewUserRepository(s.mockDB).FindUserByUsername(s.T().Context(), "admin")
	s.Require().NoError(err)
	s.Equal(domain.RoleAdmin, u.Role)
	s.Equal("hash", u.Password)
}
