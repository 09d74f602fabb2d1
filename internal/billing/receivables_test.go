package billing

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/tagihan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeLine(id int64, category domain.CategoryType, subtotal Amount, paid ...Amount) domain.BillableLine {
	l := domain.BillableLine{ID: id, Category: category, Subtotal: subtotal, Status: domain.LineStatusActive}
	for _, p := range paid {
		l.Payments = append(l.Payments, domain.Payment{LineID: id, Amount: p})
	}
	return l
}

func TestPartitionByHasReceivables_CancelledNeverCounts(t *testing.T) {
	b := activeLine(2, domain.CategoryDaily, 5000)
	b.Status = domain.LineStatusCancelled

	customers := []domain.Customer{
		{ID: 2, Name: "B", Lines: []domain.BillableLine{b}},
		{ID: 1, Name: "A", Lines: []domain.BillableLine{activeLine(1, domain.CategoryDaily, 10000)}},
	}

	with, without := PartitionByHasReceivables(customers)
	require.Len(t, with, 1)
	require.Len(t, without, 1)
	assert.Equal(t, "A", with[0].Name)
	assert.Equal(t, "B", without[0].Name)

	assert.Equal(t, map[int64]Amount{1: 10000, 2: 0}, OutstandingByCustomer(customers))
}

func TestPartitionByHasReceivables_SortedCaseSensitive(t *testing.T) {
	customers := []domain.Customer{
		{ID: 1, Name: "budi"},
		{ID: 2, Name: "Budi"},
		{ID: 3, Name: "Andi"},
		{ID: 4, Name: "andi", Lines: []domain.BillableLine{activeLine(1, domain.CategoryOrder, 1)}},
		{ID: 5, Name: "Zaki", Lines: []domain.BillableLine{activeLine(2, domain.CategoryOrder, 1)}},
	}

	with, without := PartitionByHasReceivables(customers)
	assert.Equal(t, []string{"Zaki", "andi"}, names(with))
	assert.Equal(t, []string{"Andi", "Budi", "budi"}, names(without))
}

func TestPartitionByHasReceivables_Empty(t *testing.T) {
	with, without := PartitionByHasReceivables(nil)
	assert.Empty(t, with)
	assert.Empty(t, without)
}

func TestPartitionByHasReceivables_TotalPartition(t *testing.T) {
	f := gofakeit.New(2024)

	for i := 0; i < 30; i++ {
		customers := randomCustomers(f, f.IntRange(0, 25))
		with, without := PartitionByHasReceivables(customers)

		require.Len(t, append(append([]domain.Customer{}, with...), without...), len(customers))
		seen := make(map[int64]int)
		for _, c := range with {
			assert.True(t, HasOutstandingReceivables(c))
			seen[c.ID]++
		}
		for _, c := range without {
			assert.False(t, HasOutstandingReceivables(c))
			seen[c.ID]++
		}
		for _, c := range customers {
			assert.Equal(t, 1, seen[c.ID])
		}
		assert.IsNonDecreasing(t, names(with))
		assert.IsNonDecreasing(t, names(without))
	}
}

func TestOutstandingByCustomer(t *testing.T) {
	overpaid := activeLine(3, domain.CategoryOrder, 1000, 4000)
	completed := activeLine(4, domain.CategoryOrder, 1000, 1000)
	completed.Status = domain.LineStatusCompleted

	customers := []domain.Customer{
		{ID: 1, Name: "A", Lines: []domain.BillableLine{
			activeLine(1, domain.CategoryDaily, 100000, 30000, 20000),
			activeLine(2, domain.CategoryOrder, 20000),
			overpaid,
			completed,
		}},
		{ID: 2, Name: "B"},
	}

	got := OutstandingByCustomer(customers)
	assert.Equal(t, Amount(70000), got[1])
	v, ok := got[2]
	assert.True(t, ok)
	assert.Zero(t, v)
}

func TestFilterByCategory(t *testing.T) {
	cancelled := activeLine(3, domain.CategoryDaily, 5000)
	cancelled.Status = domain.LineStatusCancelled

	lines := []domain.BillableLine{
		activeLine(1, domain.CategoryDaily, 10000, 2000),
		activeLine(2, domain.CategoryOrder, 30000),
		cancelled,
		activeLine(4, domain.CategoryDaily, 7000, 7000),
		activeLine(5, domain.CategoryDaily, 1000),
	}

	ids := func(ls []domain.BillableLine) []int64 {
		res := make([]int64, 0, len(ls))
		for _, l := range ls {
			res = append(res, l.ID)
		}
		return res
	}

	assert.Equal(t, []int64{1, 5}, ids(FilterByCategory(lines, domain.CategoryDaily)))
	assert.Equal(t, []int64{2}, ids(FilterByCategory(lines, domain.CategoryOrder)))
	assert.Equal(t, []int64{1, 2, 5}, ids(FilterByCategory(lines, "")))
	assert.Empty(t, FilterByCategory(nil, domain.CategoryDaily))
}

func TestSummarize(t *testing.T) {
	customers := []domain.Customer{
		{ID: 1, Name: "A", Lines: []domain.BillableLine{
			activeLine(1, domain.CategoryDaily, 10000, 2000),
			activeLine(2, domain.CategoryOrder, 30000),
		}},
		{ID: 2, Name: "B", Lines: []domain.BillableLine{activeLine(3, domain.CategoryOrder, 5000, 5000)}},
		{ID: 3, Name: "C", Lines: []domain.BillableLine{activeLine(4, domain.CategoryOrder, 1000)}},
	}

	s := Summarize(customers)
	assert.Equal(t, 3, s.Customers)
	assert.Equal(t, 2, s.CustomersWithReceivables)
	assert.Equal(t, 3, s.OpenLines)
	assert.Equal(t, Amount(39000), s.TotalOutstanding)
	assert.Equal(t, map[domain.CategoryType]Amount{
		domain.CategoryDaily: 8000,
		domain.CategoryOrder: 31000,
	}, s.ByCategory)
}

func names(cs []domain.Customer) []string {
	res := make([]string, 0, len(cs))
	for _, c := range cs {
		res = append(res, c.Name)
	}
	return res
}

func randomCustomers(f *gofakeit.Faker, n int) []domain.Customer {
	statuses := []domain.LineStatusType{domain.LineStatusActive, domain.LineStatusCompleted, domain.LineStatusCancelled}
	categories := []domain.CategoryType{domain.CategoryDaily, domain.CategoryOrder}

	customers := make([]domain.Customer, n)
	var lineID int64
	for i := range customers {
		c := domain.Customer{ID: int64(i + 1), Name: f.Name()}
		for j := 0; j < f.IntRange(0, 4); j++ {
			lineID++
			l := activeLine(lineID, categories[f.IntRange(0, 1)], Amount(f.IntRange(0, 100000)))
			l.Status = statuses[f.IntRange(0, 2)]
			if f.Bool() {
				l.Payments = append(l.Payments, domain.Payment{Amount: Amount(f.IntRange(1, 100000))})
			}
			c.Lines = append(c.Lines, l)
		}
		customers[i] = c
	}
	return customers
}
