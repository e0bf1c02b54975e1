package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/inodb/orfmap/internal/mapper"
)

// WriteSummary renders the run statistics as a table.
func WriteSummary(w io.Writer, mode string, minLength int, stats mapper.Stats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	rows := [][]string{
		{"Frames", fmt.Sprintf("%d", stats.Frames)},
		{"Peptides", fmt.Sprintf("%d", stats.Spans)},
		{"Mapped", fmt.Sprintf("%d", stats.Mapped)},
		{"Missing contig", fmt.Sprintf("%d", stats.MissingContig)},
		{fmt.Sprintf("Shorter than %d nt", minLength), fmt.Sprintf("%d", stats.Short)},
	}
	table.AppendBulk(rows)

	table.SetFooter([]string{"Mode", mode})
	table.Render()
}
