package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/maydkoch/levlresources/internal/server"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP ingest and resolution-review API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if err := a.pipeline.BuildIndices(ctx); err != nil {
				return err
			}

			srv := server.NewServer(a.pipeline, a.logger)
			r := srv.SetupRouter()

			a.logger.Info("starting server", zap.String("port", port))
			return r.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "8080", "port to listen on")
	return cmd
}
