package billing

import "github.com/fsdevblog/tagihan/internal/domain"

// TotalPaid сумма всех платежей строки. Порядок платежей на результат не влияет.
func TotalPaid(payments []domain.Payment) Amount {
	var total Amount
	for _, p := range payments {
		total += p.Amount
	}
	return total
}

// TotalPaidRaw то же самое для нетипизированных записей, как они приходят из JSON. Запись без
// поля amount или с мусором в нем дает 0.
func TotalPaidRaw(payments []map[string]any) Amount {
	var total Amount
	for _, p := range payments {
		total += Parse(p["amount"])
	}
	return total
}
