package output

import (
	"encoding/json"
	"io"

	"github.com/dmagro/tx-inspector/internal/summary"
)

// SummaryMap flattens a summary into the machine-readable field set. Keys
// match the summary field names; marshalling the map gives sorted keys.
func SummaryMap(s *summary.Summary) map[string]interface{} {
	return map[string]interface{}{
		"chainId":       s.ChainID,
		"network":       s.Network,
		"txHash":        s.TxHash,
		"fromAddr":      s.FromAddr,
		"toAddr":        s.ToAddr,
		"blockNumber":   s.BlockNumber,
		"timestamp":     s.Timestamp,
		"confirmations": s.Confirmations,
		"status":        s.Status,
		"gasUsed":       s.GasUsed,
		"gasLimit":      s.GasLimit,
		"gasEfficiency": s.GasEfficiency,
		"gasPriceGwei":  s.GasPriceGwei,
		"totalFeeEth":   s.TotalFeeEth,
		"baseFeeGwei":   s.BaseFeeGwei,
		"miner":         s.Miner,
		"explorer":      s.Explorer,
	}
}

// RenderSummaryJSON writes the summary as a single pretty-printed JSON
// object with sorted keys and 2-space indentation.
func RenderSummaryJSON(w io.Writer, s *summary.Summary) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(SummaryMap(s))
}
