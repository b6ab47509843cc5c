package utils

import (
	"reflect"
	"strings"
)

// ColumnList returns the `db` tags of T, in field order. Embedded structs are flattened.
func ColumnList[T any](prefix ...string) []string {
	var zero T
	columns := columnsOf(reflect.TypeOf(zero))
	if len(prefix) == 0 || prefix[0] == "" {
		return columns
	}
	for i, c := range columns {
		columns[i] = prefix[0] + "." + c
	}
	return columns
}

func columnsOf(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("db")
		if field.Anonymous && tag == "" && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOf(field.Type)...)
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		columns = append(columns, name)
	}
	return columns
}
