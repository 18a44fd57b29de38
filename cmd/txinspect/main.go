package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/tx-inspector/internal/config"
)

func main() {
	config.LoadEnv()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "txinspect <tx-hash>",
		Short: "Inspect a transaction and its gas economics",
		Long: `Fetch a transaction, its receipt, and its block over JSON-RPC and
display derived metrics: gas efficiency, fee totals, confirmation depth,
and the explorer link for the network.

Examples:
  txinspect 0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b
  txinspect 0x88df...944b --rpc https://polygon-rpc.com
  txinspect 0x88df...944b --json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.rpcURL, "rpc", "", "RPC endpoint URL (default: config file, then $RPC_URL)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Emit the summary as JSON")
	cmd.Flags().BoolVar(&opts.rawOut, "raw", false, "Also dump the raw RPC payloads (text mode only)")
	cmd.Flags().StringVar(&opts.cfgPath, "config", defaultConfigPath, "Config file path")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "Per-request timeout (0 = config default)")

	cmd.AddCommand(chainsCmd())

	return cmd
}
