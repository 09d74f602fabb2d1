package repoargs

import "github.com/fsdevblog/tagihan/internal/domain"

type LineCreate struct {
	CustomerID  int64
	Description string
	Category    domain.CategoryType
	Quantity    int64
	UnitPrice   domain.Amount
	Discount    domain.Amount
	Subtotal    domain.Amount
}

// LineBatchQueryRow вызывается для каждой строки батч вставки. i индекс в исходном срезе.
type LineBatchQueryRow func(i int, line *domain.BillableLine, err error)
