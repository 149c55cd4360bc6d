package google

import (
	"fmt"

	"gestao/internal/table"
)

// valuesToTable converts a Sheets values matrix into a table. The first row
// is the header; every cell is coerced to text.
func valuesToTable(values [][]interface{}) table.Table {
	if len(values) == 0 {
		return table.Table{}
	}
	t := table.New(toStrings(values[0])...)
	for _, raw := range values[1:] {
		row := make([]string, len(t.Columns))
		cells := toStrings(raw)
		for i := range row {
			if i < len(cells) {
				row[i] = cells[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func tableToValues(t table.Table) [][]interface{} {
	out := make([][]interface{}, 0, t.Len()+1)
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}
	out = append(out, header)
	for _, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = v
		}
		out = append(out, cells)
	}
	return out
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		switch x := v.(type) {
		case string:
			out[i] = x
		case nil:
			out[i] = ""
		default:
			out[i] = fmt.Sprint(x)
		}
	}
	return out
}
