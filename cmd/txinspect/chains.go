package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmagro/tx-inspector/internal/chains"
	"github.com/dmagro/tx-inspector/internal/output"
)

func chainsCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "chains",
		Short: "List known networks and their explorers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			registry := chains.NewRegistry(registryExtras(cfg))
			output.RenderChainsTable(os.Stdout, registry.All())
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", defaultConfigPath, "Config file path")

	return cmd
}
