package harness

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
)

var tableHeader = []string{"variant", "workload", "threads", "ns/op", "throughput", "final", "lost"}

// RenderTable 把结果渲染成文本表格
func RenderTable(results []Result) (string, error) {
	data := pterm.TableData{tableHeader}
	for _, r := range results {
		data = append(data, []string{
			r.Variant,
			r.Workload,
			strconv.Itoa(r.Threads),
			fmt.Sprintf("%.2f", r.NsPerOp),
			humanize.SIWithDigits(r.OpsPerSec, 2, "op/s"),
			humanize.Comma(r.Final),
			humanize.Comma(r.Lost),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}

// WriteJSON 以缩进 JSON 输出结果
func WriteJSON(w io.Writer, results []Result) error {
	enc := sonic.ConfigStd.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}

// WriteReport 按 format 输出报告，format 为空时按表格输出
func WriteReport(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, results)
	case FormatTable, "":
		table, err := RenderTable(results)
		if err != nil {
			return fmt.Errorf("render table: %w", err)
		}
		_, err = io.WriteString(w, table)
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
