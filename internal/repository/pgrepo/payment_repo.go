package pgrepo

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, created_at, line_id, amount, paid_on, recorded_by`

type PaymentRepository struct {
	db uow.DBTX
}

func NewPaymentRepository(db uow.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create записывает платеж. Проверка суммы против остатка на совести вызывающего, база гарантирует
// только amount > 0.
func (r *PaymentRepository) Create(ctx context.Context, args repoargs.PaymentCreate) (*domain.Payment, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO payments (line_id, amount, paid_on, recorded_by) VALUES ($1, $2, $3, $4) RETURNING `+paymentColumns,
		args.LineID, int64(args.Amount), args.PaidOn, args.RecordedBy,
	)
	p, err := scanPayment(row)
	if err != nil {
		return nil, convertErr(err, "creating payment for line %d", args.LineID)
	}
	return p, nil
}

// ListByLineIDs возвращает платежи указанных строк в порядке записи.
func (r *PaymentRepository) ListByLineIDs(ctx context.Context, lineIDs []int64) ([]domain.Payment, error) {
	if len(lineIDs) == 0 {
		return []domain.Payment{}, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE line_id = ANY($1) ORDER BY id`, lineIDs,
	)
	if err != nil {
		return nil, convertErr(err, "listing payments of lines `%v`", lineIDs)
	}
	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		p, scanErr := scanPayment(row)
		if scanErr != nil {
			return domain.Payment{}, scanErr
		}
		return *p, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning payments of lines `%v`", lineIDs)
	}
	return payments, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p      domain.Payment
		amount int64
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.LineID, &amount, &p.PaidOn, &p.RecordedBy); err != nil {
		return nil, err //nolint:wrapcheck
	}
	p.Amount = domain.Amount(amount)
	return &p, nil
}
