package summary

import (
	"math"
	"math/big"
	"strings"
	"testing"

	"github.com/dmagro/tx-inspector/internal/chains"
	"github.com/dmagro/tx-inspector/internal/rpc"
)

var testHash = "0x" + strings.Repeat("ab", 32)

func mainnetFixture() (rpc.ParsedTransaction, rpc.ParsedReceipt, rpc.ParsedBlock) {
	to := "0x1f9090aae28b8a3dceadf281b0f12828e676c326"
	blockNum := uint64(95)

	tx := rpc.ParsedTransaction{
		Hash:        testHash,
		From:        "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
		To:          &to,
		BlockNumber: &blockNum,
		GasLimit:    100000,
		Value:       big.NewInt(0),
	}
	receipt := rpc.ParsedReceipt{
		BlockNumber: 95,
		GasUsed:     50000,
		Status:      1,
		GasPriceWei: big.NewInt(30_000_000_000),
	}
	block := rpc.ParsedBlock{
		Number:        95,
		Timestamp:     1_700_000_000,
		Miner:         "0x4838b106fce9647bdf1e7877bf73ce8b0bad5f97",
		BaseFeePerGas: big.NewInt(20_000_000_000),
	}
	return tx, receipt, block
}

func TestBuildMainnet(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()

	s := Build(registry, 1, testHash, tx, receipt, block, 100)

	if s.Network != "Ethereum Mainnet" {
		t.Errorf("Network = %q, want Ethereum Mainnet", s.Network)
	}
	if s.Explorer != "https://etherscan.io/tx/"+testHash {
		t.Errorf("Explorer = %q", s.Explorer)
	}
	if s.Confirmations != 5 {
		t.Errorf("Confirmations = %d, want 5", s.Confirmations)
	}
	if s.GasEfficiency != 50.00 {
		t.Errorf("GasEfficiency = %v, want 50.00", s.GasEfficiency)
	}
	if s.GasPriceGwei != 30.0 {
		t.Errorf("GasPriceGwei = %v, want 30.0", s.GasPriceGwei)
	}
	if s.BaseFeeGwei != 20.0 {
		t.Errorf("BaseFeeGwei = %v, want 20.0", s.BaseFeeGwei)
	}
	if math.Abs(s.TotalFeeEth-0.0015) > 1e-12 {
		t.Errorf("TotalFeeEth = %v, want 0.0015", s.TotalFeeEth)
	}
	if s.StatusText() != "Success" {
		t.Errorf("StatusText = %q, want Success", s.StatusText())
	}
	if s.ToAddr == ToContractCreation {
		t.Error("ToAddr should carry the recipient address")
	}
}

func TestBuildContractCreation(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()
	tx.To = nil

	s := Build(registry, 1, testHash, tx, receipt, block, 100)
	if s.ToAddr != ToContractCreation {
		t.Errorf("ToAddr = %q, want %q", s.ToAddr, ToContractCreation)
	}
}

func TestBuildUnknownChain(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()

	s := Build(registry, 999999, testHash, tx, receipt, block, 100)
	if s.Network != "Chain 999999" {
		t.Errorf("Network = %q, want Chain 999999", s.Network)
	}
	if s.Explorer != "N/A" {
		t.Errorf("Explorer = %q, want N/A", s.Explorer)
	}
}

func TestBuildPreLondonBlock(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()
	block.BaseFeePerGas = nil

	s := Build(registry, 1, testHash, tx, receipt, block, 100)
	if s.BaseFeeGwei != 0.0 {
		t.Errorf("BaseFeeGwei = %v, want 0.0 for missing base fee", s.BaseFeeGwei)
	}
}

func TestBuildMissingMiner(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()
	block.Miner = ""

	s := Build(registry, 1, testHash, tx, receipt, block, 100)
	if s.Miner != MinerUnknown {
		t.Errorf("Miner = %q, want %q", s.Miner, MinerUnknown)
	}
}

func TestBuildLaggingLatest(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()

	s := Build(registry, 1, testHash, tx, receipt, block, 90)
	if s.Confirmations != 0 {
		t.Errorf("Confirmations = %d, want 0 (clamped)", s.Confirmations)
	}
}

func TestBuildFailedStatus(t *testing.T) {
	registry := chains.NewRegistry(nil)
	tx, receipt, block := mainnetFixture()
	receipt.Status = 0

	s := Build(registry, 1, testHash, tx, receipt, block, 100)
	if s.StatusText() != "Failed" {
		t.Errorf("StatusText = %q, want Failed", s.StatusText())
	}
}
