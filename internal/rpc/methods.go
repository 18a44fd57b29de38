package rpc

import (
	"context"
	"encoding/json"
	"fmt"
)

// ChainID calls eth_chainId and returns the network identifier. This is the
// first call made against an endpoint and doubles as the connectivity probe.
func (c *Client) ChainID(ctx context.Context) (uint64, *CallResult) {
	result := c.Call(ctx, "eth_chainId")
	if !result.Success {
		return 0, result
	}

	var hexStr string
	if err := json.Unmarshal(result.Response.Result, &hexStr); err != nil {
		result.failParse(fmt.Errorf("failed to parse chain id: %w", err))
		return 0, result
	}

	chainID, err := ParseHexUint64(hexStr)
	if err != nil {
		result.failParse(err)
		return 0, result
	}

	return chainID, result
}

// BlockNumber calls eth_blockNumber and returns the current block height.
func (c *Client) BlockNumber(ctx context.Context) (uint64, *CallResult) {
	result := c.Call(ctx, "eth_blockNumber")
	if !result.Success {
		return 0, result
	}

	var hexStr string
	if err := json.Unmarshal(result.Response.Result, &hexStr); err != nil {
		result.failParse(fmt.Errorf("failed to parse block number: %w", err))
		return 0, result
	}

	blockNum, err := ParseHexUint64(hexStr)
	if err != nil {
		result.failParse(err)
		return 0, result
	}

	return blockNum, result
}

// TransactionByHash calls eth_getTransactionByHash. A null result means the
// node has never seen the hash and is reported as a not-found failure.
func (c *Client) TransactionByHash(ctx context.Context, hash string) (*Transaction, *CallResult) {
	tx, _, result := c.TransactionByHashWithRaw(ctx, hash)
	return tx, result
}

// TransactionByHashWithRaw returns the transaction along with the raw JSON
// "result" payload for callers that display it.
func (c *Client) TransactionByHashWithRaw(ctx context.Context, hash string) (*Transaction, json.RawMessage, *CallResult) {
	result := c.Call(ctx, "eth_getTransactionByHash", hash)
	if !result.Success {
		return nil, nil, result
	}

	raw := result.Response.Result
	if isNullResult(raw) {
		result.failNotFound(fmt.Sprintf("transaction %s", hash))
		return nil, nil, result
	}

	var tx Transaction
	if err := json.Unmarshal(raw, &tx); err != nil {
		result.failParse(fmt.Errorf("failed to parse transaction: %w", err))
		return nil, nil, result
	}

	return &tx, raw, result
}

// TransactionReceipt calls eth_getTransactionReceipt. Receipts only exist
// for mined transactions; a null result is a not-found failure.
func (c *Client) TransactionReceipt(ctx context.Context, hash string) (*Receipt, *CallResult) {
	receipt, _, result := c.TransactionReceiptWithRaw(ctx, hash)
	return receipt, result
}

// TransactionReceiptWithRaw returns the receipt along with the raw JSON
// "result" payload.
func (c *Client) TransactionReceiptWithRaw(ctx context.Context, hash string) (*Receipt, json.RawMessage, *CallResult) {
	result := c.Call(ctx, "eth_getTransactionReceipt", hash)
	if !result.Success {
		return nil, nil, result
	}

	raw := result.Response.Result
	if isNullResult(raw) {
		result.failNotFound(fmt.Sprintf("receipt for %s", hash))
		return nil, nil, result
	}

	var receipt Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		result.failParse(fmt.Errorf("failed to parse receipt: %w", err))
		return nil, nil, result
	}

	return &receipt, raw, result
}

// BlockByNumber calls eth_getBlockByNumber with transaction hashes only
// (fullTx=false); the summary needs header fields, not transaction bodies.
func (c *Client) BlockByNumber(ctx context.Context, blockNum string) (*Block, *CallResult) {
	block, _, result := c.BlockByNumberWithRaw(ctx, blockNum)
	return block, result
}

// BlockByNumberWithRaw returns the block along with the raw JSON "result"
// payload.
func (c *Client) BlockByNumberWithRaw(ctx context.Context, blockNum string) (*Block, json.RawMessage, *CallResult) {
	result := c.Call(ctx, "eth_getBlockByNumber", blockNum, false)
	if !result.Success {
		return nil, nil, result
	}

	raw := result.Response.Result
	if isNullResult(raw) {
		result.failNotFound(fmt.Sprintf("block %s", blockNum))
		return nil, nil, result
	}

	var block Block
	if err := json.Unmarshal(raw, &block); err != nil {
		result.failParse(fmt.Errorf("failed to parse block: %w", err))
		return nil, nil, result
	}

	return &block, raw, result
}

func isNullResult(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
