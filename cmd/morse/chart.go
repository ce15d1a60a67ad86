package morse

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

const chartColumns = 4

func writeChart(out io.Writer, columns int) {
	if columns < 1 {
		columns = 1
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	header := table.Row{}
	for i := 0; i < columns; i++ {
		header = append(header, "Char", "Code")
	}
	t.AppendHeader(header)

	// The space has no visible code, so it stays out of the chart.
	chars := lo.Filter(Supported(), func(r rune, _ int) bool { return r != ' ' })
	for _, chunk := range lo.Chunk(chars, columns) {
		row := table.Row{}
		for _, r := range chunk {
			code, _ := Lookup(r)
			row = append(row, string(r), string(code))
		}
		t.AppendRow(row)
	}
	t.Render()
}
