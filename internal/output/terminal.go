// Package output renders inspection results: colored terminal lines for
// humans, a sorted JSON object for machines, and the chains listing table.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/dmagro/tx-inspector/internal/inspector"
	"github.com/dmagro/tx-inspector/internal/summary"
)

var (
	labelCyan = color.New(color.FgCyan).SprintFunc()
	bold      = color.New(color.Bold).SprintFunc()
	green     = color.New(color.FgGreen, color.Bold).SprintFunc()
	red       = color.New(color.FgRed, color.Bold).SprintFunc()
)

// DisableColors turns off ANSI output, e.g. when piping.
func DisableColors() {
	color.NoColor = true
}

// RenderConnectLatency prints the endpoint probe latency line.
func RenderConnectLatency(w io.Writer, latency time.Duration) {
	fmt.Fprintf(w, "RPC latency: %.3fs\n", latency.Seconds())
}

// RenderPending prints the informational line for an unmined transaction.
func RenderPending(w io.Writer) {
	fmt.Fprintln(w, "Pending transaction: not yet mined, no summary available.")
}

// RenderSummaryTerminal writes the human-readable summary.
func RenderSummaryTerminal(w io.Writer, s *summary.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s\n", bold("Transaction Summary"))
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════")
	fmt.Fprintf(w, "  %s        %s (%d)\n", labelCyan("Network:"), s.Network, s.ChainID)
	fmt.Fprintf(w, "  %s       %s\n", labelCyan("Explorer:"), s.Explorer)
	fmt.Fprintf(w, "  %s           %s\n", labelCyan("From:"), s.FromAddr)
	fmt.Fprintf(w, "  %s             %s\n", labelCyan("To:"), s.ToAddr)
	fmt.Fprintf(w, "  %s         %s\n", labelCyan("Status:"), statusColored(s))
	fmt.Fprintf(w, "  %s          %s\n", labelCyan("Miner:"), s.Miner)
	fmt.Fprintf(w, "  %s          %d  %s UTC\n", labelCyan("Block:"), s.BlockNumber, formatUTC(s.Timestamp))
	fmt.Fprintf(w, "  %s  %d\n", labelCyan("Confirmations:"), s.Confirmations)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s       %d / %d (%.2f%%)\n", labelCyan("Gas Used:"), s.GasUsed, s.GasLimit, s.GasEfficiency)
	fmt.Fprintf(w, "  %s      %.2f gwei   %s %.2f gwei\n", labelCyan("Gas Price:"), s.GasPriceGwei, labelCyan("Base Fee:"), s.BaseFeeGwei)
	fmt.Fprintf(w, "  %s      %s\n", labelCyan("Total Fee:"), green(fmt.Sprintf("%.6f ETH", s.TotalFeeEth)))
	fmt.Fprintln(w)
}

// RenderRawPayloads appends the raw RPC result payloads for --raw.
func RenderRawPayloads(w io.Writer, raw inspector.RawPayloads) {
	sections := []struct {
		title   string
		payload json.RawMessage
	}{
		{"Raw transaction", raw.Transaction},
		{"Raw receipt", raw.Receipt},
		{"Raw block", raw.Block},
	}
	for _, sec := range sections {
		fmt.Fprintf(w, "%s\n", bold(sec.title))
		fmt.Fprintln(w, indentJSON(sec.payload))
		fmt.Fprintln(w)
	}
}

func statusColored(s *summary.Summary) string {
	if s.Status == 1 {
		return green(s.StatusText())
	}
	return red(s.StatusText())
}

func formatUTC(unixSeconds uint64) string {
	return time.Unix(int64(unixSeconds), 0).UTC().Format("2006-01-02 15:04:05")
}

func indentJSON(raw json.RawMessage) string {
	var buf []byte
	var v interface{}
	if err := json.Unmarshal(raw, &v); err == nil {
		buf, _ = json.MarshalIndent(v, "", "  ")
	}
	if buf == nil {
		return string(raw)
	}
	return string(buf)
}
