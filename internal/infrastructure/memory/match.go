package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// containsFold subcadena sin distinguir mayúsculas, como ILIKE '%f%'.
func containsFold(value, fragment string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(fragment))
}

// sortStable mismo orden que PostgreSQL: created_at, id.
func sortStable[T any](items []T, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.Before(tj)
		}
		return idi < idj
	})
}

// paginate recorta la página solicitada; total es el conteo previo al recorte.
func paginate[T any](items []T, page repository.PageRequest) ([]T, int64) {
	total := int64(len(items))
	start := page.Offset()
	if start < 0 || start >= len(items) {
		return []T{}, total
	}
	end := start + page.Size
	if end < start || end > len(items) {
		end = len(items)
	}
	return items[start:end], total
}
