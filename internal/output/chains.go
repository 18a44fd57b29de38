package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/tx-inspector/internal/chains"
)

// RenderChainsTable lists the known networks with their chain IDs and
// explorer base URLs.
func RenderChainsTable(w io.Writer, networks []chains.Network) {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()

	tbl := table.New("Chain ID", "Network", "Explorer")
	tbl.WithWriter(w)
	tbl.WithHeaderFormatter(headerFmt)

	for _, n := range networks {
		explorer := n.Explorer
		if explorer == "" {
			explorer = "—"
		}
		tbl.AddRow(n.ChainID, n.Name, explorer)
	}

	fmt.Fprintln(w)
	tbl.Print()
	fmt.Fprintln(w)
}
