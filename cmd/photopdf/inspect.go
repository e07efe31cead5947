// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/photopdf/internal/inspect"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <pdf>",
	Short: "Show the page count and page sizes of a PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := inspect.File(args[0])
		if err != nil {
			return err
		}
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(r)
		}
		inspect.Print(os.Stdout, r)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the report as JSON")

	rootCmd.AddCommand(inspectCmd)
}
