package rpc

import (
	"encoding/json"
	"testing"
)

func TestTransactionParsed(t *testing.T) {
	to := "0x1f9090aae28b8a3dceadf281b0f12828e676c326"
	blockNum := "0x64"

	tx := Transaction{
		Hash:        "0xabc",
		From:        "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
		To:          &to,
		BlockNumber: &blockNum,
		Gas:         "0x5208",
		Value:       "0xde0b6b3a7640000",
		Nonce:       "0x2a",
	}

	p := tx.Parsed()
	if p.GasLimit != 21000 {
		t.Errorf("GasLimit = %d, want 21000", p.GasLimit)
	}
	if p.BlockNumber == nil || *p.BlockNumber != 100 {
		t.Errorf("BlockNumber = %v, want 100", p.BlockNumber)
	}
	if p.Nonce != 42 {
		t.Errorf("Nonce = %d, want 42", p.Nonce)
	}
	if p.Value.String() != "1000000000000000000" {
		t.Errorf("Value = %s, want 1000000000000000000", p.Value)
	}
	if tx.Pending() {
		t.Error("Pending() = true for a mined transaction")
	}
}

func TestTransactionPendingAndCreation(t *testing.T) {
	// The node returns null for both blockNumber and to; the JSON decoder
	// leaves the pointers nil.
	raw := `{"hash":"0xabc","from":"0xd8da","to":null,"blockNumber":null,"gas":"0x5208","value":"0x0","nonce":"0x0"}`

	var tx Transaction
	if err := json.Unmarshal([]byte(raw), &tx); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !tx.Pending() {
		t.Error("Pending() = false, want true for null blockNumber")
	}
	if tx.To != nil {
		t.Errorf("To = %v, want nil for contract creation", *tx.To)
	}

	p := tx.Parsed()
	if p.BlockNumber != nil {
		t.Errorf("Parsed BlockNumber = %v, want nil", *p.BlockNumber)
	}
}

func TestReceiptGasPriceCandidates(t *testing.T) {
	tests := []struct {
		name    string
		receipt Receipt
		want    uint64
	}{
		{
			name:    "effective_preferred",
			receipt: Receipt{EffectiveGasPrice: "0x6fc23ac00", GasPrice: "0x1"},
			want:    30_000_000_000,
		},
		{
			name:    "legacy_fallback",
			receipt: Receipt{GasPrice: "0x4a817c800"},
			want:    20_000_000_000,
		},
		{
			name:    "neither_present",
			receipt: Receipt{},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.receipt.Parsed()
			if p.GasPriceWei == nil {
				t.Fatal("GasPriceWei is nil")
			}
			if p.GasPriceWei.Uint64() != tt.want {
				t.Errorf("GasPriceWei = %s, want %d", p.GasPriceWei, tt.want)
			}
		})
	}
}

func TestBlockParsedBaseFee(t *testing.T) {
	withFee := Block{
		Number:        "0x64",
		Timestamp:     "0x6553f100",
		Miner:         "0xminer",
		BaseFeePerGas: "0x4a817c800",
	}
	p := withFee.Parsed()
	if p.BaseFeePerGas == nil || p.BaseFeePerGas.Uint64() != 20_000_000_000 {
		t.Errorf("BaseFeePerGas = %v, want 20000000000", p.BaseFeePerGas)
	}
	if p.Timestamp != 1_700_000_000 {
		t.Errorf("Timestamp = %d, want 1700000000", p.Timestamp)
	}

	// Pre-London blocks omit the field entirely.
	preLondon := Block{Number: "0x1", Timestamp: "0x1"}
	if got := preLondon.Parsed().BaseFeePerGas; got != nil {
		t.Errorf("BaseFeePerGas = %v, want nil for pre-London block", got)
	}
}
