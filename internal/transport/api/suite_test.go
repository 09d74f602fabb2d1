package api

import (
	"io"
	"net/http"
	"time"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/logger"
	"github.com/fsdevblog/tagihan/internal/service/tokens"
	"github.com/fsdevblog/tagihan/internal/transport/api/mocks"
	"github.com/fsdevblog/tagihan/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

const (
	staffID int64 = 1
	adminID int64 = 2
)

// handlerSuite общая подготовка для тестов обработчиков.
type handlerSuite struct {
	suite.Suite
	router          *gin.Engine
	jwtSecret       []byte
	staffToken      string
	adminToken      string
	mockUsers       *mocks.MockUserServicer
	mockCustomers   *mocks.MockCustomerServicer
	mockLines       *mocks.MockLineServicer
	mockReceivables *mocks.MockReceivablesServicer
}

func (s *handlerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	mockCtrl := gomock.NewController(s.T())

	s.mockUsers = mocks.NewMockUserServicer(mockCtrl)
	s.mockCustomers = mocks.NewMockCustomerServicer(mockCtrl)
	s.mockLines = mocks.NewMockLineServicer(mockCtrl)
	s.mockReceivables = mocks.NewMockReceivablesServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	var err error
	s.staffToken, err = tokens.GenerateUserJWT(staffID, domain.RoleStaff, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	s.adminToken, err = tokens.GenerateUserJWT(adminID, domain.RoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(err)

	s.router, err = New(RouterArgs{
		Logger:             logger.New(io.Discard),
		UserService:        s.mockUsers,
		CustomerService:    s.mockCustomers,
		LineService:        s.mockLines,
		ReceivablesService: s.mockReceivables,
		JWTSecretKey:       s.jwtSecret,
	})
	s.Require().NoError(err)
}

// do выполняет запрос. Пустой token означает запрос без авторизации.
func (s *handlerSuite) do(method, url string, body any, token string) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if body != nil {
		args.Body = testutils.JSONBody(body)
	}

	var opts []func(*testutils.RequestOptions)
	if token != "" {
		opts = append(opts, testutils.WithBearer(token))
	}

	res, err := testutils.MakeRequest(args, opts...)
	s.Require().NoError(err)
	return res
}
