package billing

import (
	"strings"

	"github.com/fsdevblog/tagihan/internal/domain"
)

// IsDuplicateName сообщает, есть ли среди candidates другой клиент с таким же именем. Сравнение
// без учета регистра и крайних пробелов, клиент с excludeID пропускается (редактирование самого себя).
// Проверка только подсказка, уникальность гарантирует индекс в базе.
func IsDuplicateName(candidates []domain.Customer, name string, excludeID int64) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	for _, c := range candidates {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return true
		}
	}
	return false
}
