package uow

import (
	"errors"
	"fmt"
)

var (
	ErrRepositoryNotRegistered     = errors.New("repository not registered")
	ErrRepositoryAlreadyRegistered = errors.New("repository already registered")
	ErrInvalidRepositoryType       = errors.New("invalid repository type")
)

// RepositoryError ошибка реестра с именем репозитория. Сравнивается с сентинелами через errors.Is.
type RepositoryError struct {
	Name RepositoryName
	Err  error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("uow: repository %q: %s", e.Name, e.Err.Error())
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

func repositoryError(name RepositoryName, err error) error {
	return &RepositoryError{Name: name, Err: err}
}
