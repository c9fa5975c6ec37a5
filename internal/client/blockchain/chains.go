package blockchain

import (
	"fmt"
	"sort"
)

// Chain describes a supported EVM network.
type Chain struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	NativeSymbol string `json:"native_symbol"`
	ExplorerURL  string `json:"explorer_url"`
}

// NativeDecimals is 18 on every supported chain.
const NativeDecimals uint8 = 18

var chains = map[int64]Chain{
	1:     {ID: 1, Name: "Ethereum", Slug: "eth-mainnet", NativeSymbol: "ETH", ExplorerURL: "https://etherscan.io"},
	10:    {ID: 10, Name: "Optimism", Slug: "opt-mainnet", NativeSymbol: "ETH", ExplorerURL: "https://optimistic.etherscan.io"},
	56:    {ID: 56, Name: "BNB Smart Chain", Slug: "bnb-mainnet", NativeSymbol: "BNB", ExplorerURL: "https://bscscan.com"},
	137:   {ID: 137, Name: "Polygon", Slug: "polygon-mainnet", NativeSymbol: "POL", ExplorerURL: "https://polygonscan.com"},
	8453:  {ID: 8453, Name: "Base", Slug: "base-mainnet", NativeSymbol: "ETH", ExplorerURL: "https://basescan.org"},
	42161: {ID: 42161, Name: "Arbitrum One", Slug: "arb-mainnet", NativeSymbol: "ETH", ExplorerURL: "https://arbiscan.io"},
	43114: {ID: 43114, Name: "Avalanche C-Chain", Slug: "avax-mainnet", NativeSymbol: "AVAX", ExplorerURL: "https://snowtrace.io"},
}

// LookupChain returns the chain for id.
func LookupChain(id int64) (Chain, bool) {
	c, ok := chains[id]
	return c, ok
}

// SupportedChains lists every chain ordered by id.
func SupportedChains() []Chain {
	out := make([]Chain, 0, len(chains))
	for _, c := range chains {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RPCURL builds the provider endpoint for a chain.
// Pattern: https://<slug>.g.alchemy.com/v2/<api_key>
func RPCURL(chainID int64, apiKey string) (string, error) {
	c, ok := chains[chainID]
	if !ok {
		return "", fmt.Errorf("unsupported chain id %d", chainID)
	}
	if apiKey == "" {
		return "", fmt.Errorf("RPC API key not provided")
	}
	return fmt.Sprintf("https://%s.g.alchemy.com/v2/%s", c.Slug, apiKey), nil
}

// TxURL links a transaction on the chain's explorer.
func (c Chain) TxURL(hash string) string {
	return c.ExplorerURL + "/tx/" + hash
}
