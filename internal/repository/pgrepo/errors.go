package pgrepo

import (
	"errors"
	"fmt"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// convertErr приводит ошибку к стандартному виду слоя репозитория: контекст, тип бизнес-ошибки
// и оригинальное сообщение.
//   - pgx.ErrNoRows -> domain.ErrRecordNotFound.
//   - нарушение уникальности -> domain.ErrDuplicateKey.
//   - ссылка на несуществующую запись -> domain.ErrRecordNotFound.
//   - все остальное -> domain.ErrUnknown.
func convertErr(err error, format string, formatArgs ...any) error {
	if err == nil {
		return nil
	}

	msg := fmt.Sprintf(format, formatArgs...)

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("[repository/%s] %w", msg, domain.ErrRecordNotFound)
	}

	errType := domain.ErrUnknown

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			errType = domain.ErrDuplicateKey
		case foreignKeyViolationCode:
			errType = domain.ErrRecordNotFound
		}
	}

	return fmt.Errorf("[repository/%s] %w: %s", msg, errType, err.Error())
}
