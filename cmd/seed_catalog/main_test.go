package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "categoria,nombre,precio_compra,precio_venta,stock,descripcion\n" +
	"Mouse,Rexus Daxa Air IV,800000,900000.5,100,Mouse gaming\n" +
	"Mouse,O'Neil,1.005,2,0,\n" +
	"Teclado,Keychron K2,1000,1200,5,Mecánico\n"

func TestParse_DerivaIDsEstables(t *testing.T) {
	cats1, prods1, err := parse(decodeText([]byte(sample)))
	require.NoError(t, err)
	cats2, prods2, err := parse(decodeText([]byte(sample)))
	require.NoError(t, err)

	assert.Len(t, cats1, 2)
	require.Len(t, prods1, 3)
	assert.Equal(t, cats1, cats2)
	assert.Equal(t, prods1[0].id, prods2[0].id)
	assert.Equal(t, prods1[0].categoryID, prods1[1].categoryID)
	assert.NotEqual(t, prods1[0].categoryID, prods1[2].categoryID)
	assert.Equal(t, "900000.50", prods1[0].priceSell.StringFixed(2))
}

func TestParse_Latin1(t *testing.T) {
	latin1 := []byte("categoria,nombre,precio_compra,precio_venta,stock,descripcion\nAccesorios,Funda,1,2,3,Dise\xf1o\n")
	_, prods, err := parse(decodeText(latin1))
	require.NoError(t, err)
	require.Len(t, prods, 1)
	assert.Equal(t, "Diseño", prods[0].description)
}

func TestParse_Errores(t *testing.T) {
	head := "categoria,nombre,precio_compra,precio_venta,stock,descripcion\n"
	for name, row := range map[string]string{
		"sin nombre":      "Mouse,,1,2,3,x\n",
		"precio negativo": "Mouse,A,-1,2,3,x\n",
		"stock texto":     "Mouse,A,1,2,tres,x\n",
		"columnas":        "Mouse,A,1\n",
	} {
		_, _, err := parse(strings.NewReader(head + row))
		assert.Error(t, err, name)
	}
}

func TestWriteSQL_Idempotente(t *testing.T) {
	cats, prods, err := parse(decodeText([]byte(sample)))
	require.NoError(t, err)
	var buf bytes.Buffer
	writeSQL(&buf, cats, prods)
	sql := buf.String()

	assert.Contains(t, sql, "INSERT INTO categories")
	assert.Equal(t, 3, strings.Count(sql, "INSERT INTO products"))
	assert.Equal(t, 4, strings.Count(sql, "ON CONFLICT (id)"))
	assert.Contains(t, sql, "'O''Neil'")
	assert.Contains(t, sql, "1.01, 2.00")
}
