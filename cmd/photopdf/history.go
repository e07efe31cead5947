// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photopdf/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export past conversions",
	Long: `History reads the conversion log kept in the data directory. Use
subcommands to list recent conversions or export the full log.`,
}

// --- list subcommand ---

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent conversions, newest first",
	RunE:  runHistoryList,
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := st.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistory(results, jsonOutput)
}

func formatHistory(results []types.ConversionResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No conversions yet.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-5s  %-10s  %-6s  %-40s  %s\n",
		"Created", "Pages", "Page", "Fit", "Path", "Size")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, r := range results {
		path := r.Path
		if len(path) > 40 {
			path = "..." + path[len(path)-37:]
		}
		page := fmt.Sprintf("%s/%s", r.Options.PageSize, r.Options.Orientation)
		if len(page) > 10 {
			page = page[:10]
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-5d  %-10s  %-6s  %-40s  %d\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"), r.Pages, page, r.Options.Fit, path, r.Bytes)
	}

	fmt.Fprintf(os.Stdout, "\n%d conversions\n", len(results))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the conversion history to YAML or JSON",
	Long: `Export writes the full conversion history to history.yaml or
history.json in the data directory.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var path string
	switch format {
	case "yaml", "":
		path, err = st.ExportYAML(cmd.Context())
	case "json":
		path, err = st.ExportJSON(cmd.Context())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	historyListCmd.Flags().Int("limit", 0, "maximum conversions to list (0 = default of 20)")
	historyListCmd.Flags().Bool("json", false, "output results as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
