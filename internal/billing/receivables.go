package billing

import (
	"slices"
	"strings"

	"github.com/fsdevblog/tagihan/internal/domain"
)

// openOutstanding положительный остаток строки. Отмененные и погашенные строки дают 0.
func openOutstanding(line domain.BillableLine) Amount {
	if line.Status == domain.LineStatusCancelled {
		return 0
	}
	if o := Calculate(line).Outstanding; o > 0 {
		return o
	}
	return 0
}

func customerOutstanding(c domain.Customer) Amount {
	var total Amount
	for _, l := range c.Lines {
		total += openOutstanding(l)
	}
	return total
}

// OutstandingByCustomer сумма задолженности по каждому клиенту. Каждый клиент из входа попадает
// в результат, даже с нулем. Переплата по одной строке не уменьшает долг по другой.
func OutstandingByCustomer(customers []domain.Customer) map[int64]Amount {
	res := make(map[int64]Amount, len(customers))
	for _, c := range customers {
		res[c.ID] += customerOutstanding(c)
	}
	return res
}

func HasOutstandingReceivables(customer domain.Customer) bool {
	for _, l := range customer.Lines {
		if openOutstanding(l) > 0 {
			return true
		}
	}
	return false
}

// PartitionByHasReceivables делит клиентов на должников и остальных. Каждая часть отсортирована
// по имени побайтово (с учетом регистра), при равных именах сохраняется входной порядок.
func PartitionByHasReceivables(customers []domain.Customer) (with, without []domain.Customer) {
	with = make([]domain.Customer, 0)
	without = make([]domain.Customer, 0)
	for _, c := range customers {
		if HasOutstandingReceivables(c) {
			with = append(with, c)
		} else {
			without = append(without, c)
		}
	}

	byName := func(a, b domain.Customer) int { return strings.Compare(a.Name, b.Name) }
	slices.SortStableFunc(with, byName)
	slices.SortStableFunc(without, byName)
	return with, without
}

// FilterByCategory строки, которые клиент еще должен оплатить в данной категории. Пустая категория
// означает любую. Порядок входа сохраняется.
func FilterByCategory(lines []domain.BillableLine, category domain.CategoryType) []domain.BillableLine {
	res := make([]domain.BillableLine, 0, len(lines))
	for _, l := range lines {
		if category != "" && l.Category != category {
			continue
		}
		if openOutstanding(l) > 0 {
			res = append(res, l)
		}
	}
	return res
}

// Summary агрегаты для сводки по дебиторке.
type Summary struct {
	Customers                int
	CustomersWithReceivables int
	OpenLines                int
	TotalOutstanding         Amount
	ByCategory               map[domain.CategoryType]Amount
}

func Summarize(customers []domain.Customer) Summary {
	s := Summary{
		Customers:  len(customers),
		ByCategory: make(map[domain.CategoryType]Amount),
	}
	for _, c := range customers {
		var owes bool
		for _, l := range c.Lines {
			o := openOutstanding(l)
			if o <= 0 {
				continue
			}
			owes = true
			s.OpenLines++
			s.TotalOutstanding += o
			s.ByCategory[l.Category] += o
		}
		if owes {
			s.CustomersWithReceivables++
		}
	}
	return s
}
