package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

func newResolveCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:       "resolve {nodes|edges}",
		Short:     "Report candidate-duplicate nodes or edges for merge review",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"nodes", "edges"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			var report interface{}
			switch args[0] {
			case "nodes":
				report, err = a.pipeline.SimilarNodes(ctx, threshold)
			case "edges":
				report, err = a.pipeline.SimilarEdges(ctx, threshold)
			default:
				return cmd.Usage()
			}
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 0, "similarity threshold 1-100 (default from config)")
	return cmd
}
