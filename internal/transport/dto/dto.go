// Package dto описывает JSON представление сущностей HTTP API. Используется и сервером, и клиентом.
package dto

import (
	"time"

	"github.com/fsdevblog/tagihan/internal/billing"
	"github.com/fsdevblog/tagihan/internal/domain"
)

// DateLayout формат дат платежей.
const DateLayout = "2006-01-02"

type User struct {
	ID        int64           `json:"id"`
	Username  string          `json:"login"`
	Role      domain.RoleType `json:"role"`
	CreatedAt time.Time       `json:"created_at"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Payment struct {
	ID         int64     `json:"id"`
	LineID     int64     `json:"line_id"`
	Amount     int64     `json:"amount"`
	PaidOn     string    `json:"paid_on"`
	RecordedBy int64     `json:"recorded_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type Line struct {
	ID          int64                 `json:"id"`
	CustomerID  int64                 `json:"customer_id"`
	Description string                `json:"description"`
	Category    domain.CategoryType   `json:"category"`
	Quantity    int64                 `json:"quantity"`
	UnitPrice   int64                 `json:"unit_price"`
	Discount    int64                 `json:"discount"`
	Subtotal    int64                 `json:"subtotal"`
	Status      domain.LineStatusType `json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
	AmountPaid  int64                 `json:"amount_paid"`
	Outstanding int64                 `json:"outstanding"`
	IsSettled   bool                  `json:"is_settled"`
	Payments    []Payment             `json:"payments"`
}

type CustomerReceivable struct {
	Customer
	Outstanding          int64  `json:"outstanding"`
	OutstandingFormatted string `json:"outstanding_formatted"`
}

type Summary struct {
	Customers                 int              `json:"customers"`
	CustomersWithReceivables  int              `json:"customers_with_receivables"`
	OpenLines                 int              `json:"open_lines"`
	TotalOutstanding          int64            `json:"total_outstanding"`
	TotalOutstandingFormatted string           `json:"total_outstanding_formatted"`
	ByCategory                map[string]int64 `json:"by_category"`
}

type Overview struct {
	WithReceivables    []CustomerReceivable `json:"with_receivables"`
	WithoutReceivables []CustomerReceivable `json:"without_receivables"`
	Summary            Summary              `json:"summary"`
}

type Statement struct {
	Customer       Customer            `json:"customer"`
	Category       domain.CategoryType `json:"category,omitempty"`
	Lines          []Line              `json:"lines"`
	Total          int64               `json:"total"`
	TotalFormatted string              `json:"total_formatted"`
}

type PaymentResult struct {
	Payment Payment `json:"payment"`
	Line    Line    `json:"line"`
}

// PaymentRequest тело POST /lines/:id/payments. Amount число или строка вида "50.000".
type PaymentRequest struct {
	Amount any    `json:"amount"`
	PaidOn string `json:"paid_on,omitempty"`
}

// Rejection тело ответа на отклоненный платеж или переход статуса.
type Rejection struct {
	Error                string `json:"error"`
	Outstanding          *int64 `json:"outstanding,omitempty"`
	OutstandingFormatted string `json:"outstanding_formatted,omitempty"`
}

func FromUser(u domain.User) User {
	return User{ID: u.ID, Username: u.Username, Role: u.Role, CreatedAt: u.CreatedAt}
}

func FromCustomer(c domain.Customer) Customer {
	return Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (c Customer) ToDomain() domain.Customer {
	return domain.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromPayment(p domain.Payment) Payment {
	return Payment{
		ID:         p.ID,
		LineID:     p.LineID,
		Amount:     int64(p.Amount),
		PaidOn:     p.PaidOn.Format(DateLayout),
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

// ToDomain переводит платеж обратно. Неразборчивая дата дает нулевое время.
func (p Payment) ToDomain() domain.Payment {
	paidOn, _ := time.Parse(DateLayout, p.PaidOn)
	return domain.Payment{
		ID:         p.ID,
		LineID:     p.LineID,
		Amount:     domain.Amount(p.Amount),
		PaidOn:     paidOn,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

func FromLine(l domain.BillableLine) Line {
	b := billing.Calculate(l)
	payments := make([]Payment, len(l.Payments))
	for i, p := range l.Payments {
		payments[i] = FromPayment(p)
	}
	return Line{
		ID:          l.ID,
		CustomerID:  l.CustomerID,
		Description: l.Description,
		Category:    l.Category,
		Quantity:    l.Quantity,
		UnitPrice:   int64(l.UnitPrice),
		Discount:    int64(l.Discount),
		Subtotal:    int64(l.Subtotal),
		Status:      l.Status,
		CreatedAt:   l.CreatedAt,
		AmountPaid:  int64(b.AmountPaid),
		Outstanding: int64(b.Outstanding),
		IsSettled:   b.IsSettled,
		Payments:    payments,
	}
}

// ToDomain переводит строку обратно. Производные поля (AmountPaid, Outstanding) отбрасываются,
// их пересчитывает billing.
func (l Line) ToDomain() domain.BillableLine {
	payments := make([]domain.Payment, len(l.Payments))
	for i, p := range l.Payments {
		payments[i] = p.ToDomain()
	}
	return domain.BillableLine{
		ID:          l.ID,
		CustomerID:  l.CustomerID,
		Description: l.Description,
		Category:    l.Category,
		Quantity:    l.Quantity,
		UnitPrice:   domain.Amount(l.UnitPrice),
		Discount:    domain.Amount(l.Discount),
		Subtotal:    domain.Amount(l.Subtotal),
		Status:      l.Status,
		CreatedAt:   l.CreatedAt,
		Payments:    payments,
	}
}

func FromLines(lines []domain.BillableLine) []Line {
	res := make([]Line, len(lines))
	for i, l := range lines {
		res[i] = FromLine(l)
	}
	return res
}

func FromSummary(s billing.Summary) Summary {
	byCategory := make(map[string]int64, len(s.ByCategory))
	for k, v := range s.ByCategory {
		byCategory[string(k)] = int64(v)
	}
	return Summary{
		Customers:                 s.Customers,
		CustomersWithReceivables:  s.CustomersWithReceivables,
		OpenLines:                 s.OpenLines,
		TotalOutstanding:          int64(s.TotalOutstanding),
		TotalOutstandingFormatted: billing.FormatRupiah(s.TotalOutstanding),
		ByCategory:                byCategory,
	}
}

func FromReceivables(customers []domain.Customer, outstanding map[int64]domain.Amount) []CustomerReceivable {
	res := make([]CustomerReceivable, len(customers))
	for i, c := range customers {
		o := outstanding[c.ID]
		res[i] = CustomerReceivable{
			Customer:             FromCustomer(c),
			Outstanding:          int64(o),
			OutstandingFormatted: billing.FormatRupiah(o),
		}
	}
	return res
}

func NewRejection(err error, outstanding domain.Amount) Rejection {
	o := int64(outstanding)
	return Rejection{
		Error:                err.Error(),
		Outstanding:          &o,
		OutstandingFormatted: billing.FormatRupiah(outstanding),
	}
}
