// Package chains maps chain IDs to human-readable network names and block
// explorer base URLs. The built-in tables cover the common EVM networks and
// are immutable; additional networks can be layered in from configuration.
package chains

import (
	"fmt"
	"sort"
)

// builtinNames and builtinExplorers are initialized once and never mutated.
var builtinNames = map[uint64]string{
	1:     "Ethereum Mainnet",
	10:    "Optimism",
	56:    "BNB Smart Chain",
	137:   "Polygon",
	42161: "Arbitrum One",
	8453:  "Base",
}

var builtinExplorers = map[uint64]string{
	1:     "https://etherscan.io",
	10:    "https://optimistic.etherscan.io",
	56:    "https://bscscan.com",
	137:   "https://polygonscan.com",
	42161: "https://arbiscan.io",
	8453:  "https://basescan.org",
}

// Network describes one known chain.
type Network struct {
	ChainID  uint64
	Name     string
	Explorer string // base URL, empty when the chain has no public explorer
}

// Registry resolves chain IDs to network metadata. Construct with
// NewRegistry; a Registry is read-only after construction.
type Registry struct {
	names     map[uint64]string
	explorers map[uint64]string
}

// NewRegistry builds a registry from the built-in tables plus any extra
// networks (typically from the config file). Extras override built-ins on
// chain ID collision.
func NewRegistry(extra []Network) *Registry {
	r := &Registry{
		names:     make(map[uint64]string, len(builtinNames)+len(extra)),
		explorers: make(map[uint64]string, len(builtinExplorers)+len(extra)),
	}
	for id, name := range builtinNames {
		r.names[id] = name
	}
	for id, url := range builtinExplorers {
		r.explorers[id] = url
	}
	for _, n := range extra {
		r.names[n.ChainID] = n.Name
		if n.Explorer != "" {
			r.explorers[n.ChainID] = n.Explorer
		}
	}
	return r
}

// Name returns the human-readable network name for a chain ID, or the
// synthesized label "Chain {id}" when the chain is unknown.
func (r *Registry) Name(chainID uint64) string {
	if name, ok := r.names[chainID]; ok {
		return name
	}
	return fmt.Sprintf("Chain %d", chainID)
}

// TxURL returns the explorer link for a transaction, or "N/A" when no
// explorer is known for the chain.
func (r *Registry) TxURL(chainID uint64, txHash string) string {
	base, ok := r.explorers[chainID]
	if !ok || base == "" {
		return "N/A"
	}
	return fmt.Sprintf("%s/tx/%s", base, txHash)
}

// All returns every known network sorted by chain ID, for listing.
func (r *Registry) All() []Network {
	nets := make([]Network, 0, len(r.names))
	for id, name := range r.names {
		nets = append(nets, Network{
			ChainID:  id,
			Name:     name,
			Explorer: r.explorers[id],
		})
	}
	sort.Slice(nets, func(i, j int) bool { return nets[i].ChainID < nets[j].ChainID })
	return nets
}
