package domain

type LineStatusType string

const (
	LineStatusActive    LineStatusType = "ACTIVE"
	LineStatusCompleted LineStatusType = "COMPLETED"
	LineStatusCancelled LineStatusType = "CANCELLED"
)

// IsTerminal сообщает, что из статуса больше нет переходов.
func (s LineStatusType) IsTerminal() bool {
	return s == LineStatusCompleted || s == LineStatusCancelled
}

func (s LineStatusType) IsValid() bool {
	switch s {
	case LineStatusActive, LineStatusCompleted, LineStatusCancelled:
		return true
	default:
		return false
	}
}

// CategoryType разделяет дневные продажи и работы под заказ.
type CategoryType string

const (
	CategoryDaily CategoryType = "daily"
	CategoryOrder CategoryType = "order"
)

func (c CategoryType) IsValid() bool {
	return c == CategoryDaily || c == CategoryOrder
}

type RoleType string

const (
	RoleAdmin RoleType = "admin"
	RoleStaff RoleType = "staff"
)

func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff
}
