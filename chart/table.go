package chart

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable 以文本表格输出采样点
func (r *Record) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", r.XLabel, r.YLabel})
	table.SetCaption(true, r.Label)
	for i := range r.Time {
		table.Append([]string{
			strconv.Itoa(i),
			strconv.FormatFloat(r.Time[i], 'g', 6, 64),
			strconv.FormatFloat(r.Value[i], 'g', 6, 64),
		})
	}
	table.Render()
}
