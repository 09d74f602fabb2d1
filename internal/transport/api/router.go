package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/tagihan/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	HealthRoute  = "/health"
	MetricsRoute = "/metrics"

	RouteGroup         = "/api"
	LoginRoute         = "/user/login"
	UsersRoute         = "/users"
	CustomersRoute     = "/customers"
	CustomerRoute      = "/customers/:id"
	StatementRoute     = "/customers/:id/statement"
	CustomerLinesRoute = "/customers/:id/lines"
	LineRoute          = "/lines/:id"
	LinePaymentsRoute  = "/lines/:id/payments"
	LineCompleteRoute  = "/lines/:id/complete"
	LineCancelRoute    = "/lines/:id/cancel"
)

type RouterArgs struct {
	Logger             *logrus.Logger
	UserService        UserServicer
	CustomerService    CustomerServicer
	LineService        LineServicer
	ReceivablesService ReceivablesServicer
	JWTSecretKey       []byte
	// Registry если задан, HTTP метрики регистрируются в нем и отдаются на MetricsRoute.
	Registry *prometheus.Registry
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	if args.Registry != nil {
		m, err := middlewares.NewHTTPMetrics(args.Registry)
		if err != nil {
			return nil, fmt.Errorf("http metrics: %w", err)
		}
		r.Use(m.Handler())
		r.GET(MetricsRoute, gin.WrapH(promhttp.HandlerFor(args.Registry, promhttp.HandlerOpts{})))
	}
	r.Use(middlewares.Errors())

	r.GET(HealthRoute, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(args.UserService)
	customersHandler := NewCustomersHandler(args.CustomerService)
	receivablesHandler := NewReceivablesHandler(args.ReceivablesService)
	linesHandler := NewLinesHandler(args.LineService)

	api := r.Group(RouteGroup)

	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.POST(UsersRoute, middlewares.AdminRequired(), authHandler.Create)

	api.GET(CustomersRoute, receivablesHandler.Index)
	api.POST(CustomersRoute, customersHandler.Create)
	api.PUT(CustomerRoute, customersHandler.Update)
	api.GET(StatementRoute, receivablesHandler.Statement)
	api.GET(CustomerLinesRoute, receivablesHandler.Lines)
	api.POST(CustomerLinesRoute, linesHandler.Create)

	api.GET(LineRoute, linesHandler.Show)
	api.POST(LinePaymentsRoute, linesHandler.Pay)
	api.POST(LineCompleteRoute, linesHandler.Complete)
	api.POST(LineCancelRoute, linesHandler.Cancel)
	return r, nil
}
