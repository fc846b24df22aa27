package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"untracker/internal/extract"
	"untracker/internal/voices"
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	if isatty.IsTerminal(os.Stdout.Fd()) {
		tw.SetStyle(table.StyleRounded)
	}

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func printSummary(w io.Writer, outcomes []extract.Outcome) {
	if len(outcomes) == 0 {
		fmt.Fprintln(w, "No isolatable voices found.")
		return
	}

	rows := make([][]string, 0, len(outcomes))
	written := 0
	for _, o := range outcomes {
		detail := o.Path
		if o.Status != extract.StatusWritten {
			detail = o.Reason
		} else {
			written++
		}
		rows = append(rows, []string{
			strconv.Itoa(o.Voice.Index + 1),
			displayName(o.Voice),
			o.Status.String(),
			detail,
		})
	}

	fmt.Fprintln(w, renderTable([]string{"#", "Name", "Result", "Detail"}, rows))
	fmt.Fprintf(w, "%d of %d stems written.\n", written, len(outcomes))
}

func printVoices(w io.Writer, list []voices.Descriptor) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No isolatable voices found.")
		return
	}
	rows := make([][]string, 0, len(list))
	for _, d := range list {
		rows = append(rows, []string{
			strconv.Itoa(d.Index + 1),
			d.Kind.String(),
			displayName(d),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"#", "Kind", "Name"}, rows))
}

func displayName(d voices.Descriptor) string {
	if d.Name != "" {
		return d.Name
	}
	return fmt.Sprintf("(%s %d)", d.Kind, d.Index+1)
}
