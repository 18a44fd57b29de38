package rpc

import (
	"encoding/json"
	"math/big"
)

// Request represents a JSON-RPC 2.0 request sent to an Ethereum node.
// The ID is hardcoded to 1 everywhere: we use synchronous HTTP, one
// request per response, so there is nothing to correlate.
type Request struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

// Response represents a JSON-RPC 2.0 response from an Ethereum node.
// Result is kept as json.RawMessage because its shape depends on the
// method called; the caller parses it into the expected type.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError represents an error object returned by the JSON-RPC server.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Transaction holds the raw eth_getTransactionByHash response fields we
// consume. All numeric values arrive as hex strings; To and BlockNumber are
// pointers because the node returns null for contract-creation transactions
// and pending transactions respectively.
type Transaction struct {
	Hash                 string  `json:"hash"`
	From                 string  `json:"from"`
	To                   *string `json:"to"`
	BlockNumber          *string `json:"blockNumber"`
	Gas                  string  `json:"gas"`
	GasPrice             string  `json:"gasPrice,omitempty"`
	MaxFeePerGas         string  `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas string  `json:"maxPriorityFeePerGas,omitempty"`
	Value                string  `json:"value"`
	Nonce                string  `json:"nonce"`
}

// ParsedTransaction holds transaction data as native Go types.
type ParsedTransaction struct {
	Hash        string
	From        string
	To          *string  // nil for contract creation
	BlockNumber *uint64  // nil while pending
	GasLimit    uint64
	Value       *big.Int
	Nonce       uint64
}

// Parsed converts the raw hex-encoded Transaction into native Go types.
// Parse errors default individual fields to zero, matching how block
// parsing treats malformed hex from an already-validated response.
func (t *Transaction) Parsed() ParsedTransaction {
	gas, _ := ParseHexUint64(t.Gas)
	nonce, _ := ParseHexUint64(t.Nonce)
	value, _ := ParseHexBigInt(t.Value)
	if value == nil {
		value = big.NewInt(0)
	}

	var blockNum *uint64
	if t.BlockNumber != nil {
		n, _ := ParseHexUint64(*t.BlockNumber)
		blockNum = &n
	}

	return ParsedTransaction{
		Hash:        t.Hash,
		From:        t.From,
		To:          t.To,
		BlockNumber: blockNum,
		GasLimit:    gas,
		Value:       value,
		Nonce:       nonce,
	}
}

// Pending reports whether the transaction has not yet been mined.
func (t *Transaction) Pending() bool {
	return t.BlockNumber == nil
}

// Receipt holds the raw eth_getTransactionReceipt response fields we consume.
// EffectiveGasPrice is the post-London field; some legacy nodes report
// gasPrice on the receipt instead, so both candidates are kept.
type Receipt struct {
	TransactionHash   string  `json:"transactionHash"`
	BlockNumber       string  `json:"blockNumber"`
	GasUsed           string  `json:"gasUsed"`
	Status            string  `json:"status"`
	EffectiveGasPrice string  `json:"effectiveGasPrice,omitempty"`
	GasPrice          string  `json:"gasPrice,omitempty"`
	ContractAddress   *string `json:"contractAddress"`
}

// ParsedReceipt holds receipt data as native Go types.
type ParsedReceipt struct {
	BlockNumber uint64
	GasUsed     uint64
	Status      uint64   // 1 = success, 0 = reverted
	GasPriceWei *big.Int // effective price, or legacy fallback; never nil
}

// Parsed converts the raw hex-encoded Receipt into native Go types.
func (r *Receipt) Parsed() ParsedReceipt {
	blockNum, _ := ParseHexUint64(r.BlockNumber)
	gasUsed, _ := ParseHexUint64(r.GasUsed)
	status, _ := ParseHexUint64(r.Status)

	return ParsedReceipt{
		BlockNumber: blockNum,
		GasUsed:     gasUsed,
		Status:      status,
		GasPriceWei: r.gasPriceWei(),
	}
}

// gasPriceWei resolves the per-gas price actually paid. Candidates are tried
// in order: effectiveGasPrice (fee-market chains), then the legacy gasPrice.
// Returns zero when neither is present.
func (r *Receipt) gasPriceWei() *big.Int {
	for _, hex := range []string{r.EffectiveGasPrice, r.GasPrice} {
		if hex == "" {
			continue
		}
		if v, err := ParseHexBigInt(hex); err == nil {
			return v
		}
	}
	return big.NewInt(0)
}

// Block holds the raw eth_getBlockByNumber response fields we consume.
// BaseFeePerGas is absent on pre-London blocks and stays an empty string.
type Block struct {
	Number        string `json:"number"`
	Hash          string `json:"hash"`
	Timestamp     string `json:"timestamp"`
	Miner         string `json:"miner"`
	GasUsed       string `json:"gasUsed"`
	GasLimit      string `json:"gasLimit"`
	BaseFeePerGas string `json:"baseFeePerGas,omitempty"`
}

// ParsedBlock holds block data as native Go types.
type ParsedBlock struct {
	Number        uint64
	Hash          string
	Timestamp     uint64
	Miner         string
	GasUsed       uint64
	GasLimit      uint64
	BaseFeePerGas *big.Int // nil for pre-London blocks
}

// Parsed converts the raw hex-encoded Block into native Go types.
func (b *Block) Parsed() ParsedBlock {
	num, _ := ParseHexUint64(b.Number)
	ts, _ := ParseHexUint64(b.Timestamp)
	gasUsed, _ := ParseHexUint64(b.GasUsed)
	gasLimit, _ := ParseHexUint64(b.GasLimit)

	var baseFee *big.Int
	if b.BaseFeePerGas != "" {
		baseFee, _ = ParseHexBigInt(b.BaseFeePerGas)
	}

	return ParsedBlock{
		Number:        num,
		Hash:          b.Hash,
		Timestamp:     ts,
		Miner:         b.Miner,
		GasUsed:       gasUsed,
		GasLimit:      gasLimit,
		BaseFeePerGas: baseFee,
	}
}
