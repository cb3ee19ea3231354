package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/maydkoch/levlresources/internal/core"
)

func newIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <file>",
		Short: "Extract a literature file into the graph",
		Long:  "Reads a literature file (first line citation, rest body), extracts a graph fragment per chunk, and merges it into the store.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			citation, body, err := core.ReadLiteratureFile(args[0])
			if err != nil {
				return err
			}

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if err := a.pipeline.BuildIndices(ctx); err != nil {
				return err
			}

			report, err := a.pipeline.Ingest(ctx, citation, body)
			if report != nil {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				_ = enc.Encode(report)
			}
			return err
		},
	}
}
