package uow

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type Option func(*UnitOfWork)

// WithTxOptions задает опции транзакций, открываемых в Do. По умолчанию read committed.
func WithTxOptions(opts pgx.TxOptions) Option {
	return func(u *UnitOfWork) {
		u.txOptions = opts
	}
}

type UnitOfWork struct {
	conn         *pgxpool.Pool
	txOptions    pgx.TxOptions
	mu           sync.RWMutex
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(conn *pgxpool.Pool, opts ...Option) *UnitOfWork {
	u := &UnitOfWork{
		conn:         conn,
		txOptions:    pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Register регистрирует фабрику репозитория под именем name. Если имя уже занято, возвращает
// ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.repositories[name]; ok {
		return repositoryError(name, ErrRepositoryAlreadyRegistered)
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет fn внутри транзакции. Репозитории, полученные из tx, работают в этой же транзакции.
// Если fn вернула ошибку, транзакция откатывается, иначе коммитится.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) (err error) {
	tx, txErr := u.conn.BeginTx(ctx, u.txOptions)
	if txErr != nil {
		return txErr //nolint:wrapcheck
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			err = errors.Join(err, rollbackErr)
		}
	}()

	if fnErr := fn(ctx, NewTransaction(tx, u.snapshot())); fnErr != nil {
		return fnErr
	}
	return tx.Commit(ctx) //nolint:wrapcheck
}

// GetRepository возвращает репозиторий, работающий вне транзакции, или ErrRepositoryNotRegistered.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	u.mu.RLock()
	factory, ok := u.repositories[name]
	u.mu.RUnlock()

	if !ok {
		return nil, repositoryError(name, ErrRepositoryNotRegistered)
	}
	return factory(u.conn), nil
}

func (u *UnitOfWork) snapshot() map[RepositoryName]RepositoryFactory {
	u.mu.RLock()
	defer u.mu.RUnlock()

	res := make(map[RepositoryName]RepositoryFactory, len(u.repositories))
	for k, v := range u.repositories {
		res[k] = v
	}
	return res
}

// GetRepositoryAs возвращает репозиторий по имени name, приведенный к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)
	if !ok {
		return res, repositoryError(name, fmt.Errorf("%w: got %T", ErrInvalidRepositoryType, repo))
	}
	return r, nil
}
