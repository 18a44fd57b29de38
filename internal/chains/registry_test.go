package chains

import "testing"

func TestRegistryName(t *testing.T) {
	r := NewRegistry(nil)

	tests := []struct {
		name    string
		chainID uint64
		want    string
	}{
		{"mainnet", 1, "Ethereum Mainnet"},
		{"polygon", 137, "Polygon"},
		{"arbitrum", 42161, "Arbitrum One"},
		{"unknown_falls_back", 999999, "Chain 999999"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Name(tt.chainID); got != tt.want {
				t.Errorf("Name(%d) = %q, want %q", tt.chainID, got, tt.want)
			}
		})
	}
}

func TestRegistryTxURL(t *testing.T) {
	r := NewRegistry(nil)
	hash := "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"

	if got, want := r.TxURL(1, hash), "https://etherscan.io/tx/"+hash; got != want {
		t.Errorf("TxURL(1) = %q, want %q", got, want)
	}
	if got := r.TxURL(999999, hash); got != "N/A" {
		t.Errorf("TxURL(unknown) = %q, want N/A", got)
	}
}

func TestRegistryExtras(t *testing.T) {
	r := NewRegistry([]Network{
		{ChainID: 31337, Name: "Localnet"},
		{ChainID: 1, Name: "Mainnet Override", Explorer: "https://example.org"},
	})

	if got := r.Name(31337); got != "Localnet" {
		t.Errorf("Name(31337) = %q, want Localnet", got)
	}
	if got := r.TxURL(31337, "0xabc"); got != "N/A" {
		t.Errorf("TxURL for explorer-less extra = %q, want N/A", got)
	}
	if got := r.Name(1); got != "Mainnet Override" {
		t.Errorf("extras should override built-ins, Name(1) = %q", got)
	}
	if got := r.TxURL(1, "0xabc"); got != "https://example.org/tx/0xabc" {
		t.Errorf("TxURL(1) = %q", got)
	}
}

func TestRegistryAllSorted(t *testing.T) {
	r := NewRegistry([]Network{{ChainID: 31337, Name: "Localnet"}})

	nets := r.All()
	if len(nets) != 7 {
		t.Fatalf("len(All()) = %d, want 7", len(nets))
	}
	for i := 1; i < len(nets); i++ {
		if nets[i].ChainID <= nets[i-1].ChainID {
			t.Fatalf("All() not sorted by chain ID: %d after %d", nets[i].ChainID, nets[i-1].ChainID)
		}
	}
}
