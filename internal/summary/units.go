package summary

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// Wei conversions are exact decimal shifts (1e9 for gwei, 1e18 for ether).
// Arithmetic stays in decimal form and only the final display value is
// lowered to float64, so large gas totals do not accumulate binary drift.

// WeiToGwei converts a wei amount to gwei. A nil amount converts to 0.
func WeiToGwei(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	return decimal.NewFromBigInt(wei, -9).InexactFloat64()
}

// WeiToEther converts a wei amount to the chain's native unit. A nil amount
// converts to 0.
func WeiToEther(wei *big.Int) float64 {
	if wei == nil {
		return 0
	}
	return decimal.NewFromBigInt(wei, -18).InexactFloat64()
}

// GasEfficiency returns gasUsed/gasLimit as a percentage rounded to two
// decimal places. Defined as 0.0 when gasLimit is zero rather than faulting
// on the division.
func GasEfficiency(gasUsed, gasLimit uint64) float64 {
	if gasLimit == 0 {
		return 0
	}
	used := decimal.NewFromUint64(gasUsed)
	limit := decimal.NewFromUint64(gasLimit)
	return used.Div(limit).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

// Confirmations returns the number of blocks mined after the transaction's
// block, clamped at zero when the latest height trails the transaction
// (e.g. when polling a lagging node).
func Confirmations(latest, txBlock uint64) uint64 {
	if latest <= txBlock {
		return 0
	}
	return latest - txBlock
}

// TotalFeeWei returns gasUsed × gasPrice in wei. A nil price yields zero.
func TotalFeeWei(gasUsed uint64, gasPriceWei *big.Int) *big.Int {
	if gasPriceWei == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Mul(new(big.Int).SetUint64(gasUsed), gasPriceWei)
}
