package pgrepo

import (
	"context"

	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/fsdevblog/tagihan/internal/repository/repoargs"
	"github.com/fsdevblog/tagihan/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const customerColumns = `id, created_at, updated_at, name, phone, address`

type CustomerRepository struct {
	db uow.DBTX
}

func NewCustomerRepository(db uow.DBTX) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create создает клиента. Имя уникально без учета регистра и крайних пробелов, при конфликте
// возвращается domain.ErrDuplicateKey.
func (r *CustomerRepository) Create(ctx context.Context, args repoargs.CustomerCreate) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO customers (name, phone, address) VALUES ($1, $2, $3) RETURNING `+customerColumns,
		args.Name, args.Phone, args.Address,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "creating customer `%s`", args.Name)
	}
	return customer, nil
}

func (r *CustomerRepository) Update(ctx context.Context, args repoargs.CustomerUpdate) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE customers SET name = $2, phone = $3, address = $4, updated_at = now()
		WHERE id = $1 RETURNING `+customerColumns,
		args.ID, args.Name, args.Phone, args.Address,
	)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "updating customer %d", args.ID)
	}
	return customer, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	customer, err := scanCustomer(row)
	if err != nil {
		return nil, convertErr(err, "finding customer %d", id)
	}
	return customer, nil
}

// List возвращает всех клиентов без строк, отсортированных по имени.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name, id`)
	if err != nil {
		return nil, convertErr(err, "listing customers")
	}
	customers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Customer, error) {
		c, scanErr := scanCustomer(row)
		if scanErr != nil {
			return domain.Customer{}, scanErr
		}
		return *c, nil
	})
	if err != nil {
		return nil, convertErr(err, "scanning customers")
	}
	return customers, nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt, &c.Name, &c.Phone, &c.Address); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &c, nil
}
