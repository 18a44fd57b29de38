package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dmagro/tx-inspector/internal/chains"
	"github.com/dmagro/tx-inspector/internal/config"
	"github.com/dmagro/tx-inspector/internal/inspector"
	"github.com/dmagro/tx-inspector/internal/output"
	"github.com/dmagro/tx-inspector/internal/rpc"
)

const defaultConfigPath = "txinspect.yaml"

type inspectOptions struct {
	rpcURL  string
	jsonOut bool
	rawOut  bool
	cfgPath string
	timeout time.Duration
}

func runInspect(ctx context.Context, txHash string, opts *inspectOptions) error {
	if !rpc.IsTxHash(txHash) {
		return fmt.Errorf("invalid transaction hash: %q (want 0x followed by 64 hex digits)", txHash)
	}

	cfg, err := loadConfig(opts.cfgPath)
	if err != nil {
		return err
	}

	timeout := cfg.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}

	endpoint := cfg.ResolveRPC(opts.rpcURL)
	client := rpc.NewClient(rpc.ClientConfig{
		Name:       "rpc",
		URL:        endpoint,
		Timeout:    timeout,
		MaxRetries: cfg.MaxRetries,
	})

	chainID, latency, err := inspector.Connect(ctx, client)
	if err != nil {
		return fmt.Errorf("could not connect to RPC %s: %w", endpoint, err)
	}
	if !opts.jsonOut {
		output.RenderConnectLatency(os.Stdout, latency)
	}

	registry := chains.NewRegistry(registryExtras(cfg))

	report, err := inspector.Inspect(ctx, client, registry, chainID, txHash)
	if errors.Is(err, inspector.ErrPending) {
		// Designed terminal state, not a failure.
		output.RenderPending(os.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	if opts.jsonOut {
		output.DisableColors()
		return output.RenderSummaryJSON(os.Stdout, &report.Summary)
	}

	output.RenderSummaryTerminal(os.Stdout, &report.Summary)
	if opts.rawOut {
		output.RenderRawPayloads(os.Stdout, report.Raw)
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	// The default path is optional; a path the user asked for must exist.
	explicit := path != defaultConfigPath
	return config.Load(path, explicit)
}

func registryExtras(cfg *config.Config) []chains.Network {
	extras := make([]chains.Network, 0, len(cfg.Networks))
	for _, n := range cfg.Networks {
		extras = append(extras, chains.Network{
			ChainID:  n.ChainID,
			Name:     n.Name,
			Explorer: n.Explorer,
		})
	}
	return extras
}
