package api

import (
	"net/http"
	"testing"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/service"
	"github.com/fsdevblog/tagihan/internal/transport/api/testutils"
	"github.com/fsdevblog/tagihan/internal/transport/dto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type CustomersHandlerTestSuite struct {
	handlerSuite
}

func TestCustomersHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomersHandlerTestSuite))
}

func (s *CustomersHandlerTestSuite) TestCreate() {
	argsOk := service.CustomerArgs{Name: "Bu Sari", Phone: "0812"}
	argsDup := service.CustomerArgs{Name: "bu sari"}

	s.mockCustomers.EXPECT().Create(gomock.Any(), argsOk).
		Return(&domain.Customer{ID: 1, Name: argsOk.Name, Phone: argsOk.Phone}, nil)
	s.mockCustomers.EXPECT().Create(gomock.Any(), argsDup).
		Return(nil, domain.ErrDuplicateKey)

	cases := []struct {
		name       string
		body       CustomerParams
		wantStatus int
	}{
		{name: "created", body: CustomerParams{Name: argsOk.Name, Phone: argsOk.Phone}, wantStatus: http.StatusCreated},
		{name: "duplicate name", body: CustomerParams{Name: argsDup.Name}, wantStatus: http.StatusConflict},
		{name: "blank name", body: CustomerParams{Name: "   "}, wantStatus: http.StatusUnprocessableEntity},
		{name: "empty name", body: CustomerParams{}, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			res := s.do(http.MethodPost, RouteGroup+CustomersRoute, tc.body, s.staffToken)
			s.Equal(tc.wantStatus, res.StatusCode)
			if tc.wantStatus != http.StatusCreated {
				_ = res.Body.Close()
				return
			}
			var customer dto.Customer
			s.Require().NoError(testutils.DecodeJSON(res, &customer))
			s.Equal(int64(1), customer.ID)
			s.Equal(argsOk.Name, customer.Name)
		})
	}
}

func (s *CustomersHandlerTestSuite) TestUpdate() {
	args := service.CustomerArgs{Name: "Pak Budi", Address: "Jl. Melati 3"}

	s.mockCustomers.EXPECT().Update(gomock.Any(), int64(7), args).
		Return(&domain.Customer{ID: 7, Name: args.Name, Address: args.Address}, nil)
	s.mockCustomers.EXPECT().Update(gomock.Any(), int64(8), args).
		Return(nil, domain.ErrRecordNotFound)

	body := CustomerParams{Name: args.Name, Address: args.Address}

	res := s.do(http.MethodPut, RouteGroup+"/customers/7", body, s.staffToken)
	_ = res.Body.Close()
	s.Equal(http.StatusOK, res.StatusCode)

	res = s.do(http.MethodPut, RouteGroup+"/customers/8", body, s.staffToken)
	_ = res.Body.Close()
	s.Equal(http.StatusNotFound, res.StatusCode)

	res = s.do(http.MethodPut, RouteGroup+"/customers/0", body, s.staffToken)
	_ = res.Body.Close()
	s.Equal(http.StatusBadRequest, res.StatusCode)
}
