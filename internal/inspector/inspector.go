// Package inspector runs the single read pass behind an inspection: probe
// the endpoint, fetch the transaction, then gather its receipt, block, and
// the latest height, and hand everything to the summary builder.
package inspector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmagro/tx-inspector/internal/chains"
	"github.com/dmagro/tx-inspector/internal/rpc"
	"github.com/dmagro/tx-inspector/internal/summary"
)

// ErrPending signals that the transaction exists but has not been mined.
// Callers treat it as an informational terminal state, not a failure.
var ErrPending = errors.New("transaction is pending")

// RawPayloads holds the raw JSON-RPC result payloads for --raw display.
type RawPayloads struct {
	Transaction json.RawMessage
	Receipt     json.RawMessage
	Block       json.RawMessage
}

// Report is the outcome of a successful inspection.
type Report struct {
	Summary summary.Summary
	Raw     RawPayloads
}

// Connect probes the endpoint with eth_chainId and returns the chain ID and
// the measured round-trip latency. This is the only place a connectivity
// failure is surfaced; every later call runs against an endpoint that has
// already answered once.
func Connect(ctx context.Context, client *rpc.Client) (uint64, time.Duration, error) {
	chainID, result := client.ChainID(ctx)
	if !result.Success {
		return 0, result.Latency, callError(result)
	}
	return chainID, result.Latency, nil
}

// Inspect fetches the transaction and its supporting objects and builds the
// summary. Returns ErrPending for unmined transactions. The receipt, block,
// and latest-height reads are independent once the transaction is known, so
// they run concurrently; results are combined deterministically before the
// builder is invoked.
func Inspect(ctx context.Context, client *rpc.Client, registry *chains.Registry, chainID uint64, txHash string) (*Report, error) {
	tx, rawTx, result := client.TransactionByHashWithRaw(ctx, txHash)
	if !result.Success {
		return nil, callError(result)
	}
	if tx.Pending() {
		return nil, ErrPending
	}

	parsedTx := tx.Parsed()
	blockNumHex := rpc.Uint64ToHex(*parsedTx.BlockNumber)

	var (
		receipt    *rpc.Receipt
		rawReceipt json.RawMessage
		block      *rpc.Block
		rawBlock   json.RawMessage
		latest     uint64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var res *rpc.CallResult
		receipt, rawReceipt, res = client.TransactionReceiptWithRaw(gctx, txHash)
		if !res.Success {
			return callError(res)
		}
		return nil
	})
	g.Go(func() error {
		var res *rpc.CallResult
		block, rawBlock, res = client.BlockByNumberWithRaw(gctx, blockNumHex)
		if !res.Success {
			return callError(res)
		}
		return nil
	})
	g.Go(func() error {
		var res *rpc.CallResult
		latest, res = client.BlockNumber(gctx)
		if !res.Success {
			return callError(res)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s := summary.Build(registry, chainID, txHash, parsedTx, receipt.Parsed(), block.Parsed(), latest)

	return &Report{
		Summary: s,
		Raw: RawPayloads{
			Transaction: rawTx,
			Receipt:     rawReceipt,
			Block:       rawBlock,
		},
	}, nil
}

// callError wraps a failed call with its method and error classification so
// the CLI diagnostic names the failure source.
func callError(result *rpc.CallResult) error {
	return fmt.Errorf("%s (%s): %w", result.Method, result.ErrorType, result.Error)
}
