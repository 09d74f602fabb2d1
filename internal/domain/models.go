package domain

import (
	"time"
)

// Amount денежная сумма в целых рупиях. Дробных единиц в этом домене нет.
type Amount int64

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	Role      RoleType
}

type Customer struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Phone     string
	Address   string
	Lines     []BillableLine
}

// BillableLine строка заказа или дневной продажи, по которой принимаются частичные оплаты.
// Payments только дополняются и хранятся в порядке записи.
type BillableLine struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CustomerID  int64
	Description string
	Category    CategoryType
	Quantity    int64
	UnitPrice   Amount
	Discount    Amount
	Subtotal    Amount
	Status      LineStatusType
	Payments    []Payment
}

type Payment struct {
	ID         int64
	CreatedAt  time.Time
	LineID     int64
	Amount     Amount
	PaidOn     time.Time
	RecordedBy int64
}

// Actor пользователь, от имени которого выполняется операция. Передается явно, чтобы проверки
// прав не зависели от глобального состояния.
type Actor struct {
	UserID int64
	Role   RoleType
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
