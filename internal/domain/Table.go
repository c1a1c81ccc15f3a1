package domain

import (
	"reflect"
	"strings"
)

// Tabular é a visão não tipada de uma tabela usada pelo runner e pelos loaders
type Tabular interface {
	Len() int
	Columns() []string
	Records(limit int) [][]any
	Values() []any
	Prototype() any
}

// Table é o resultado de um coletor: linhas homogêneas cujas colunas são as tags `bigquery` de R.
// Uma tabela vazia mantém o schema completo, pois as colunas vêm do tipo e não dos dados.
type Table[R any] struct {
	Rows []R
}

func NewTable[R any](rows []R) Table[R] {
	if rows == nil {
		rows = []R{}
	}
	return Table[R]{Rows: rows}
}

func (t Table[R]) Len() int {
	return len(t.Rows)
}

func (t Table[R]) Empty() bool {
	return len(t.Rows) == 0
}

// Head retorna as primeiras n linhas
func (t Table[R]) Head(n int) []R {
	if n < 0 || n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

func (t Table[R]) Columns() []string {
	var zero R
	return ColumnsOf(zero)
}

// Records retorna os valores das primeiras limit linhas na ordem de Columns
func (t Table[R]) Records(limit int) [][]any {
	rows := t.Head(limit)
	records := make([][]any, 0, len(rows))
	for i := range rows {
		records = append(records, recordOf(rows[i]))
	}
	return records
}

func (t Table[R]) Values() []any {
	values := make([]any, 0, len(t.Rows))
	for i := range t.Rows {
		values = append(values, t.Rows[i])
	}
	return values
}

// Prototype retorna uma linha zero de R, usada para inferir o schema de destino
func (t Table[R]) Prototype() any {
	var zero R
	return zero
}

// ColumnsOf lista os nomes de coluna de uma struct de linha a partir das tags `bigquery`
func ColumnsOf(row any) []string {
	typ := reflect.TypeOf(row)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	columns := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if name, ok := columnName(typ.Field(i)); ok {
			columns = append(columns, name)
		}
	}
	return columns
}

func recordOf(row any) []any {
	val := reflect.Indirect(reflect.ValueOf(row))
	typ := val.Type()

	record := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if _, ok := columnName(typ.Field(i)); ok {
			record = append(record, val.Field(i).Interface())
		}
	}
	return record
}

func columnName(field reflect.StructField) (string, bool) {
	if !field.IsExported() {
		return "", false
	}

	tag := field.Tag.Get("bigquery")
	if tag == "-" {
		return "", false
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, true
}
