// seed_catalog genera un script SQL para poblar categorías y productos a partir de un CSV.
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv del directorio actual y escribe en stdout.
//
// Columnas: categoria,nombre,precio_compra,precio_venta,stock,descripcion
// La primera fila es encabezado. El archivo puede venir en UTF-8 o ISO-8859-1 (export de Excel).
// Los IDs se derivan del contenido (UUID v5), así que ejecutar el script dos veces no duplica filas.
package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// namespace fijo para los UUID v5 del catálogo.
var namespace = uuid.MustParse("6f0c2a8e-3b1d-5c4e-9a7f-2d8b1e0c4f63")

type product struct {
	id          string
	categoryID  string
	name        string
	priceBuy    decimal.Decimal
	priceSell   decimal.Decimal
	stock       int
	description string
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	raw, err := os.ReadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}

	categories, products, err := parse(decodeText(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if len(os.Args) > 2 {
		f, err := os.Create(os.Args[2])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	writeSQL(out, categories, products)
	fmt.Fprintf(os.Stderr, "Generado: %d categorías, %d productos\n", len(categories), len(products))
}

// decodeText convierte Latin-1 a UTF-8 cuando el contenido no es UTF-8 válido.
func decodeText(raw []byte) io.Reader {
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))
	if utf8.Valid(raw) {
		return bytes.NewReader(raw)
	}
	return transform.NewReader(bytes.NewReader(raw), charmap.ISO8859_1.NewDecoder())
}

func parse(r io.Reader) (map[string]string, []product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 6
	cr.TrimLeadingSpace = true

	if _, err := cr.Read(); err != nil {
		return nil, nil, fmt.Errorf("encabezado: %w", err)
	}

	categories := make(map[string]string) // id -> nombre
	var products []product
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		category := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if category == "" || name == "" {
			return nil, nil, fmt.Errorf("línea %d: categoría y nombre son obligatorios", line)
		}
		buy, err := decimal.NewFromString(strings.TrimSpace(rec[2]))
		if err != nil || buy.IsNegative() {
			return nil, nil, fmt.Errorf("línea %d: precio de compra inválido %q", line, rec[2])
		}
		sell, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil || sell.IsNegative() {
			return nil, nil, fmt.Errorf("línea %d: precio de venta inválido %q", line, rec[3])
		}
		stock, err := strconv.Atoi(strings.TrimSpace(rec[4]))
		if err != nil || stock < 0 {
			return nil, nil, fmt.Errorf("línea %d: stock inválido %q", line, rec[4])
		}

		categoryID := uuid.NewSHA1(namespace, []byte("category:"+strings.ToLower(category))).String()
		categories[categoryID] = category
		products = append(products, product{
			id:          uuid.NewSHA1(namespace, []byte("product:"+categoryID+":"+strings.ToLower(name))).String(),
			categoryID:  categoryID,
			name:        name,
			priceBuy:    buy.Round(2),
			priceSell:   sell.Round(2),
			stock:       stock,
			description: strings.TrimSpace(rec[5]),
		})
	}
	return categories, products, nil
}

func writeSQL(out io.Writer, categories map[string]string, products []product) {
	ids := make([]string, 0, len(categories))
	for id := range categories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return categories[ids[i]] < categories[ids[j]] })

	fmt.Fprintln(out, "-- Catálogo generado por seed_catalog")
	fmt.Fprintln(out, "BEGIN;")
	fmt.Fprintln(out)
	if len(ids) > 0 {
		fmt.Fprintln(out, "-- 1. Categorías")
		fmt.Fprintln(out, "INSERT INTO categories (id, name, created_at, updated_at) VALUES")
		for i, id := range ids {
			sep := ","
			if i == len(ids)-1 {
				sep = ""
			}
			fmt.Fprintf(out, "  ('%s', '%s', now(), now())%s\n", id, escapeSQL(categories[id]), sep)
		}
		fmt.Fprintln(out, "ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = now();")
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "-- 2. Productos")
	for _, p := range products {
		fmt.Fprintln(out, "INSERT INTO products (id, category_id, name, price_buy, price_sell, stock, description, created_at, updated_at)")
		fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', %s, %s, %d, '%s', now(), now())\n",
			p.id, p.categoryID, escapeSQL(p.name), p.priceBuy.StringFixed(2), p.priceSell.StringFixed(2), p.stock, escapeSQL(p.description))
		fmt.Fprintln(out, "ON CONFLICT (id) DO UPDATE SET price_buy = EXCLUDED.price_buy, price_sell = EXCLUDED.price_sell,")
		fmt.Fprintln(out, "  stock = EXCLUDED.stock, description = EXCLUDED.description, updated_at = now();")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "COMMIT;")
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
