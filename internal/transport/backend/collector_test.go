package backend

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/transport/backend/client"
	"github.com/fsdevblog/tagihan/internal/transport/backend/mocks"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type CollectorTestSuite struct {
	suite.Suite
	collector  *Collector
	mockClient *mocks.MockClient
	slept      []time.Duration
}

func (s *CollectorTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockClient = mocks.NewMockClient(ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.slept = nil
	s.collector = NewCollector(s.mockClient, logger).SetWorkers(3).SetRetries(2)
	// без реальных пауз. Тесты с повторами работают одним воркером.
	s.collector.sleep = func(_ context.Context, d time.Duration) error {
		s.slept = append(s.slept, d)
		return nil
	}
}

func TestCollectorSuite(t *testing.T) {
	suite.Run(t, new(CollectorTestSuite))
}

func overviewOf(ids ...int64) *dto.Overview {
	o := &dto.Overview{}
	for i, id := range ids {
		cr := dto.CustomerReceivable{Customer: dto.Customer{ID: id, Name: string(rune('A' + i))}}
		if i%2 == 0 {
			o.WithReceivables = append(o.WithReceivables, cr)
		} else {
			o.WithoutReceivables = append(o.WithoutReceivables, cr)
		}
	}
	return o
}

func (s *CollectorTestSuite) TestCollect() {
	s.mockClient.EXPECT().ListCustomers(gomock.Any()).Return(overviewOf(1, 2, 3), nil)
	s.mockClient.EXPECT().ListLines(gomock.Any(), int64(1)).Return([]dto.Line{
		{ID: 10, CustomerID: 1, Subtotal: 100000, Status: domain.LineStatusActive,
			Payments: []dto.Payment{{Amount: 30000, PaidOn: "2025-06-01"}}},
	}, nil)
	s.mockClient.EXPECT().ListLines(gomock.Any(), int64(2)).Return([]dto.Line{}, nil)
	s.mockClient.EXPECT().ListLines(gomock.Any(), int64(3)).
		Return(nil, client.NewStatusCodeError(http.StatusInternalServerError, ""))

	collection, err := s.collector.Collect(context.Background())
	s.Require().NoError(err)

	s.Require().Len(collection.Customers, 2)
	s.Equal(int64(1), collection.Customers[0].ID)
	s.Equal(int64(2), collection.Customers[1].ID)
	s.Require().Contains(collection.Failed, int64(3))

	outstanding := billing.OutstandingByCustomer(collection.Customers)
	s.Equal(billing.Amount(70000), outstanding[1])
	s.Equal(billing.Amount(0), outstanding[2])
}

func (s *CollectorTestSuite) TestCollect_RetriesOnTooManyRequests() {
	s.collector.SetWorkers(1)

	s.mockClient.EXPECT().ListCustomers(gomock.Any()).Return(overviewOf(1), nil)
	gomock.InOrder(
		s.mockClient.EXPECT().ListLines(gomock.Any(), int64(1)).
			Return(nil, client.NewTooManyRequestError(10*time.Second)),
		s.mockClient.EXPECT().ListLines(gomock.Any(), int64(1)).
			Return([]dto.Line{{ID: 10, CustomerID: 1}}, nil),
	)

	collection, err := s.collector.Collect(context.Background())
	s.Require().NoError(err)
	s.Require().Len(collection.Customers, 1)
	s.Empty(collection.Failed)

	s.Require().Len(s.slept, 1)
	s.GreaterOrEqual(s.slept[0], 10*time.Second)
	s.LessOrEqual(s.slept[0], 12*time.Second)
}

func (s *CollectorTestSuite) TestCollect_RetriesExhausted() {
	s.collector.SetWorkers(1)

	s.mockClient.EXPECT().ListCustomers(gomock.Any()).Return(overviewOf(1), nil)
	s.mockClient.EXPECT().ListLines(gomock.Any(), int64(1)).
		Return(nil, client.NewTooManyRequestError(time.Second)).Times(3)

	collection, err := s.collector.Collect(context.Background())
	s.Require().NoError(err)
	s.Empty(collection.Customers)

	var tooMany *client.TooManyRequestError
	s.ErrorAs(collection.Failed[1], &tooMany)
	s.Len(s.slept, 2)
}

func (s *CollectorTestSuite) TestCollect_ListCustomersError() {
	boom := errors.New("connection refused")
	s.mockClient.EXPECT().ListCustomers(gomock.Any()).Return(nil, boom)

	_, err := s.collector.Collect(context.Background())
	s.ErrorIs(err, boom)
}

func (s *CollectorTestSuite) TestCollect_Cancelled() {
	ctx, cancel := context.WithCancel(context.Background())
	s.mockClient.EXPECT().ListCustomers(gomock.Any()).DoAndReturn(func(context.Context) (*dto.Overview, error) {
		cancel()
		return overviewOf(1, 2), nil
	})
	s.mockClient.EXPECT().ListLines(gomock.Any(), gomock.Any()).Return([]dto.Line{}, nil).AnyTimes()

	_, err := s.collector.Collect(ctx)
	s.ErrorIs(err, context.Canceled)
}

func TestJitter(t *testing.T) {
	for range 100 {
		v := jitter(100, 0.1, 0.2)
		if v < 90 || v > 120 {
			t.Fatalf("jitter out of range: %f", v)
		}
	}
	if v := jitter(100, -1, 0); v < 85 || v > 115 {
		t.Fatalf("jitter with negative percent out of range: %f", v)
	}
}
