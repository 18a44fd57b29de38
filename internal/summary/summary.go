// Package summary computes the derived transaction metrics: gas efficiency,
// fee totals, confirmation depth, and network/explorer resolution. Build is
// a pure function of the fetched objects; no I/O happens here.
package summary

import (
	"github.com/dmagro/tx-inspector/internal/chains"
	"github.com/dmagro/tx-inspector/internal/rpc"
)

// ToContractCreation is the recipient sentinel for transactions with no
// "to" address.
const ToContractCreation = "(contract creation)"

// MinerUnknown is the block producer sentinel for blocks that omit the
// miner field.
const MinerUnknown = "N/A"

// Summary is the flat record emitted for one transaction. It is immutable
// once built: constructed in a single pass and never partially populated.
type Summary struct {
	ChainID       uint64
	Network       string
	TxHash        string
	FromAddr      string
	ToAddr        string
	BlockNumber   uint64
	Timestamp     uint64
	Confirmations uint64
	Status        uint64
	GasUsed       uint64
	GasLimit      uint64
	GasEfficiency float64
	GasPriceGwei  float64
	TotalFeeEth   float64
	BaseFeeGwei   float64
	Miner         string
	Explorer      string
}

// StatusText renders the receipt status for display.
func (s *Summary) StatusText() string {
	if s.Status == 1 {
		return "Success"
	}
	return "Failed"
}

// Build computes every derived field from the four fetched objects and the
// chain ID. The caller guarantees the transaction is mined; pending
// transactions never reach the builder.
func Build(registry *chains.Registry, chainID uint64, txHash string,
	tx rpc.ParsedTransaction, receipt rpc.ParsedReceipt, block rpc.ParsedBlock, latest uint64) Summary {

	toAddr := ToContractCreation
	if tx.To != nil {
		toAddr = *tx.To
	}

	miner := block.Miner
	if miner == "" {
		miner = MinerUnknown
	}

	return Summary{
		ChainID:       chainID,
		Network:       registry.Name(chainID),
		TxHash:        txHash,
		FromAddr:      tx.From,
		ToAddr:        toAddr,
		BlockNumber:   receipt.BlockNumber,
		Timestamp:     block.Timestamp,
		Confirmations: Confirmations(latest, receipt.BlockNumber),
		Status:        receipt.Status,
		GasUsed:       receipt.GasUsed,
		GasLimit:      tx.GasLimit,
		GasEfficiency: GasEfficiency(receipt.GasUsed, tx.GasLimit),
		GasPriceGwei:  WeiToGwei(receipt.GasPriceWei),
		TotalFeeEth:   WeiToEther(TotalFeeWei(receipt.GasUsed, receipt.GasPriceWei)),
		BaseFeeGwei:   WeiToGwei(block.BaseFeePerGas), // nil pre-London base fee converts to 0
		Miner:         miner,
		Explorer:      registry.TxURL(chainID, txHash),
	}
}
