package uow

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	tx           pgx.Tx
}

func NewTransaction(tx pgx.Tx, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		tx:           tx,
	}
}

// Get возвращает репозиторий, привязанный к транзакции, или ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	factory, ok := t.repositories[name]
	if !ok {
		return nil, repositoryError(name, ErrRepositoryNotRegistered)
	}
	return factory(t.tx), nil
}

// GetAs как Get, но приводит репозиторий к типу T. Если приведение невозможно, возвращает
// ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	var res T
	repo, err := t.Get(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, repositoryError(name, fmt.Errorf("%w: got %T", ErrInvalidRepositoryType, repo))
	}
	return res, nil
}
