package pgrepo

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const lineColumns = `id, created_at, updated_at, customer_id, description, category,
	quantity, unit_price, discount, subtotal, status`

const insertLineSQL = `INSERT INTO billable_lines
	(customer_id, description, category, quantity, unit_price, discount, subtotal, status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, 'ACTIVE')
	RETURNING ` + lineColumns

type LineRepository struct {
	db uow.DBTX
}

func NewLineRepository(db uow.DBTX) *LineRepository {
	return &LineRepository{db: db}
}

// Create создает строку в статусе ACTIVE. Если клиента не существует, возвращает domain.ErrRecordNotFound.
func (r *LineRepository) Create(ctx context.Context, args repoargs.LineCreate) (*domain.BillableLine, error) {
	line, err := scanLine(r.db.QueryRow(ctx, insertLineSQL, lineCreateArgs(args)...))
	if err != nil {
		return nil, convertErr(err, "creating line for customer %d", args.CustomerID)
	}
	return line, nil
}

// BatchCreate вставляет несколько строк одним батчем. fn вызывается для каждой строки в порядке lines.
func (r *LineRepository) BatchCreate(ctx context.Context, lines []repoargs.LineCreate, fn repoargs.LineBatchQueryRow) {
	batch := new(pgx.Batch)
	for _, l := range lines {
		batch.Queue(insertLineSQL, lineCreateArgs(l)...)
	}

	br := r.db.SendBatch(ctx, batch)
	defer func() {
		_ = br.Close()
	}()

	for i := range lines {
		line, err := scanLine(br.QueryRow())
		fn(i, line, convertErr(err, "batch creating line #%d for customer %d", i, lines[i].CustomerID))
	}
}

func (r *LineRepository) FindByID(ctx context.Context, id int64) (*domain.BillableLine, error) {
	line, err := scanLine(r.db.QueryRow(ctx, `SELECT `+lineColumns+` FROM billable_lines WHERE id = $1`, id))
	if err != nil {
		return nil, convertErr(err, "finding line %d", id)
	}
	return line, nil
}

// FindForUpdate то же, что FindByID, но блокирует строку до конца транзакции. Имеет смысл только внутри uow.Do.
func (r *LineRepository) FindForUpdate(ctx context.Context, id int64) (*domain.BillableLine, error) {
	line, err := scanLine(r.db.QueryRow(ctx,
		`SELECT `+lineColumns+` FROM billable_lines WHERE id = $1 FOR UPDATE`, id,
	))
	if err != nil {
		return nil, convertErr(err, "locking line %d", id)
	}
	return line, nil
}

// List возвращает все строки всех клиентов в порядке создания.
func (r *LineRepository) List(ctx context.Context) ([]domain.BillableLine, error) {
	rows, err := r.db.Query(ctx, `SELECT `+lineColumns+` FROM billable_lines ORDER BY id`)
	if err != nil {
		return nil, convertErr(err, "listing lines")
	}
	return collectLines(rows, "scanning lines")
}

func (r *LineRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]domain.BillableLine, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+lineColumns+` FROM billable_lines WHERE customer_id = $1 ORDER BY id`, customerID,
	)
	if err != nil {
		return nil, convertErr(err, "listing lines of customer %d", customerID)
	}
	return collectLines(rows, "scanning lines of customer %d", customerID)
}

func (r *LineRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.LineStatusType,
) (*domain.BillableLine, error) {
	line, err := scanLine(r.db.QueryRow(ctx,
		`UPDATE billable_lines SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+lineColumns,
		id, string(status),
	))
	if err != nil {
		return nil, convertErr(err, "updating status of line %d to %s", id, status)
	}
	return line, nil
}

func lineCreateArgs(l repoargs.LineCreate) []any {
	return []any{
		l.CustomerID,
		l.Description,
		string(l.Category),
		l.Quantity,
		int64(l.UnitPrice),
		int64(l.Discount),
		int64(l.Subtotal),
	}
}

func collectLines(rows pgx.Rows, format string, formatArgs ...any) ([]domain.BillableLine, error) {
	lines, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.BillableLine, error) {
		l, scanErr := scanLine(row)
		if scanErr != nil {
			return domain.BillableLine{}, scanErr
		}
		return *l, nil
	})
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return lines, nil
}

func scanLine(row pgx.Row) (*domain.BillableLine, error) {
	var (
		l                             domain.BillableLine
		category, status              string
		unitPrice, discount, subtotal int64
	)
	err := row.Scan(
		&l.ID, &l.CreatedAt, &l.UpdatedAt, &l.CustomerID, &l.Description, &category,
		&l.Quantity, &unitPrice, &discount, &subtotal, &status,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	l.Category = domain.CategoryType(category)
	l.Status = domain.LineStatusType(status)
	l.UnitPrice = domain.Amount(unitPrice)
	l.Discount = domain.Amount(discount)
	l.Subtotal = domain.Amount(subtotal)
	return &l, nil
}
