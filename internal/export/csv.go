// Package export renders store collections for download: CSV per collection
// and a PDF summary report.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// CSV renders a slice of flat records. Column headers come from the first
// record's exported fields, in declaration order, using the json tag name
// when one is set. An empty slice yields nil bytes and no error: nothing to
// download. Quoting and quote-doubling are handled by encoding/csv, so a
// field containing commas or quotes round-trips through any standard parser.
func CSV(records any) ([]byte, error) {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Slice {
		return nil, fmt.Errorf("export: expected a slice, got %s", v.Kind())
	}
	if v.Len() == 0 {
		return nil, nil
	}
	elemType := v.Type().Elem()
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("export: expected a slice of structs, got slice of %s", elemType.Kind())
	}

	var fields []int
	var headers []string
	for i := 0; i < elemType.NumField(); i++ {
		field := elemType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := columnName(field)
		if name == "" {
			continue
		}
		fields = append(fields, i)
		headers = append(headers, name)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return nil, err
	}
	for i := 0; i < v.Len(); i++ {
		record := v.Index(i)
		row := make([]string, len(fields))
		for j, idx := range fields {
			row[j] = cellValue(record.Field(idx))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename builds the download name: prefix plus the current date.
func Filename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format("2006-01-02"))
}

func columnName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

func cellValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fmt.Sprintf("%d", v.Int())
	case reflect.Float32, reflect.Float64:
		return trimFloat(v.Float())
	case reflect.Slice, reflect.Array:
		parts := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			parts[i] = cellValue(v.Index(i))
		}
		return strings.Join(parts, "; ")
	case reflect.Struct:
		if t, ok := v.Interface().(time.Time); ok {
			return t.Format(time.RFC3339)
		}
		return fmt.Sprintf("%v", v.Interface())
	case reflect.Pointer:
		if v.IsNil() {
			return ""
		}
		return cellValue(v.Elem())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}

func trimFloat(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
