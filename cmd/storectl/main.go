package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Moskzow/StoreControl/internal/backup"
	"github.com/Moskzow/StoreControl/internal/config"
	"github.com/Moskzow/StoreControl/internal/infra"
	"github.com/Moskzow/StoreControl/internal/state"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "storectl",
		Short:   "Operate on the StoreControl data store",
		Long:    "storectl works directly against the key-value store the server uses: export and import catalogs, seed defaults, or wipe everything.",
		Version: version,
	}

	root.AddCommand(exportCmd(), importCmd(), seedCmd(), resetCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadState connects to the configured backend and loads the container.
func loadState(ctx context.Context) (*state.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	store, err := infra.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	return state.New(ctx, store, cfg.LowStockThreshold)
}

func exportCmd() *cobra.Command {
	var format, out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the catalog (json | sheet | backup)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := loadState(ctx)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = backup.ExportJSON(st.Products("", ""), st.Suppliers())
			case "sheet":
				data, err = backup.ExportSpreadsheet(st.Products("", ""), st.Suppliers())
			case "backup":
				data, err = backup.ExportComplete(backup.Snapshot{
					CompanyInfo:       st.CompanyInfo(),
					LowStockThreshold: st.LowStockThreshold(),
					Products:          st.Products("", ""),
					Suppliers:         st.Suppliers(),
					Customers:         st.Customers(),
					CustomerTypes:     st.CustomerTypes(),
					Sales:             st.Sales(time.Time{}, time.Time{}),
					Purchases:         st.Purchases(""),
					RegisterHistory:   st.RegisterHistory(),
				})
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			if err != nil {
				return err
			}

			if out == "" {
				_, err = os.Stdout.Write(data)
				return err
			}
			return os.WriteFile(out, data, 0644)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "Export format: json, sheet or backup")
	cmd.Flags().StringVar(&out, "out", "", "Write to file instead of stdout")
	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a catalog file (format auto-detected)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			result := backup.Import(raw)
			if !result.Success {
				return fmt.Errorf("%s", result.Message)
			}

			ctx := cmd.Context()
			st, err := loadState(ctx)
			if err != nil {
				return err
			}
			suppliers, products := st.ImportCatalog(ctx, result.Suppliers, result.Products)
			fmt.Printf("imported %d suppliers, %d products\n", suppliers, products)
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default pricing tiers and company profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Loading the container seeds defaults for keys that have
			// never been written.
			if _, err := loadState(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("defaults seeded")
			return nil
		},
	}
}

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Wipe every collection and restore defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset deletes all data; re-run with --yes to confirm")
			}
			ctx := cmd.Context()
			st, err := loadState(ctx)
			if err != nil {
				return err
			}
			st.ResetAll(ctx)
			fmt.Println("store reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the wipe")
	return cmd
}
