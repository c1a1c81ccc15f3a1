package pipeline

import (
	"fmt"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/civil"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/vfg2006/instagram-insights-etl/internal/domain"
)

// RenderPreview desenha as primeiras limit linhas da tabela para o log
func RenderPreview(data domain.Tabular, limit int) string {
	t := table.NewWriter()

	header := table.Row{}
	for _, c := range data.Columns() {
		header = append(header, c)
	}
	t.AppendHeader(header)

	for _, record := range data.Records(limit) {
		row := make(table.Row, 0, len(record))
		for _, v := range record {
			row = append(row, previewValue(v))
		}
		t.AppendRow(row)
	}

	if data.Len() > limit && limit >= 0 {
		t.AppendFooter(table.Row{fmt.Sprintf("... %d de %d linhas", limit, data.Len())})
	}

	t.SetStyle(table.StyleRounded)
	return t.Render()
}

func previewValue(v any) any {
	switch val := v.(type) {
	case civil.Date:
		return val.String()
	case bigquery.NullString:
		if !val.Valid {
			return "NULL"
		}
		return val.StringVal
	case bigquery.NullInt64:
		if !val.Valid {
			return "NULL"
		}
		return val.Int64
	default:
		return v
	}
}
