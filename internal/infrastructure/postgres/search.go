package postgres

import (
	"fmt"
	"strings"

	"github.com/jhoicas/contacts-api/internal/domain/repository"
)

// whereBuilder compone predicados AND con parámetros posicionales ($1, $2, ...).
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg registra v y devuelve su placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

// sql devuelve " WHERE a AND b" o "" si no hay predicados.
func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern patrón ILIKE de subcadena; %, _ y \ del usuario se tratan como literales.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// contactWhere el dueño siempre se aplica; name busca en nombre O apellido.
func contactWhere(f repository.ContactFilter) *whereBuilder {
	w := &whereBuilder{}
	w.add("user_id = " + w.arg(f.UserID))
	if f.Name != nil {
		p := w.arg(containsPattern(*f.Name))
		w.add(fmt.Sprintf("(first_name ILIKE %s OR last_name ILIKE %s)", p, p))
	}
	if f.Email != nil {
		w.add("email ILIKE " + w.arg(containsPattern(*f.Email)))
	}
	if f.Phone != nil {
		w.add("phone ILIKE " + w.arg(containsPattern(*f.Phone)))
	}
	return w
}

// productWhere numéricos como cotas inferiores inclusivas.
func productWhere(f repository.ProductFilter) *whereBuilder {
	w := &whereBuilder{}
	if f.Name != nil {
		w.add("p.name ILIKE " + w.arg(containsPattern(*f.Name)))
	}
	if f.PriceBuy != nil {
		w.add("p.price_buy >= " + w.arg(*f.PriceBuy))
	}
	if f.PriceSell != nil {
		w.add("p.price_sell >= " + w.arg(*f.PriceSell))
	}
	if f.Stock != nil {
		w.add("p.stock >= " + w.arg(*f.Stock))
	}
	return w
}

// pageClause LIMIT/OFFSET con los siguientes placeholders.
func (w *whereBuilder) pageClause(page repository.PageRequest) string {
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(page.Size), w.arg(page.Offset()))
}
