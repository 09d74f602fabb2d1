package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/tagihan/internal/config"
	"github.com/fsdevblog/tagihan/internal/repository/pgrepo"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/internal/service"
	"github.com/fsdevblog/tagihan/internal/transport/api"
	"github.com/fsdevblog/tagihan/pkg/uow"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, a.Config.MigrationsDir, a.Config.DatabaseDSN, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %w", connErr)
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services, sErr := service.Factory(unitOfWork, []byte(a.Config.JWTSecret), registry)
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	if err := a.bootstrapAdmin(notifyCtx, services.UserService); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:             a.Logger,
		UserService:        services.UserService,
		CustomerService:    services.CustomerService,
		LineService:        services.LineService,
		ReceivablesService: services.ReceivablesService,
		JWTSecretKey:       []byte(a.Config.JWTSecret),
		Registry:           registry,
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: api.DefaultServiceTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

// bootstrapAdmin создает администратора из конфигурации, если его еще нет.
func (a *App) bootstrapAdmin(ctx context.Context, users *service.UserService) error {
	if a.Config.AdminUsername == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, api.DefaultServiceTimeout)
	defer cancel()

	created, err := users.EnsureAdmin(ctx, a.Config.AdminUsername, a.Config.AdminPassword)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if created {
		a.Logger.WithField("username", a.Config.AdminUsername).Info("admin user created")
	}
	return nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn)

	factories := map[repoargs.RepositoryName]uow.RepositoryFactory{
		repoargs.UserRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewUserRepository(dbtx)
		},
		repoargs.CustomerRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewCustomerRepository(dbtx)
		},
		repoargs.LineRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewLineRepository(dbtx)
		},
		repoargs.PaymentRepoName: func(dbtx uow.DBTX) uow.Repository {
			return pgrepo.NewPaymentRepository(dbtx)
		},
	}
	for name, factory := range factories {
		if regErr := unitOfWork.Register(uow.RepositoryName(name), factory); regErr != nil {
			return nil, fmt.Errorf("init UOW: %s", regErr.Error())
		}
	}

	return unitOfWork, nil
}
