package main

import (
	"github.com/spf13/cobra"

	"audit-report/internal/media"
	"audit-report/internal/output"
	"audit-report/internal/server"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve reports for uploaded CSV exports",
	Long: `Starts an HTTP server. POST /reports takes a multipart form with a "csv"
file, any number of "images" files and an optional "logo", and answers with
the rendered report. GET /healthz reports liveness.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := cfg.Location()
		if err != nil {
			return err
		}
		addr := cfg.Serve.Listen
		if serveListen != "" {
			addr = serveListen
		}
		srv := server.New(
			output.Options{Location: loc, ShowLocations: cfg.ShowLocations},
			media.LoadLogo(cfg.Logo, logger),
			cfg.MaxUploadBytes(),
			logger,
		)
		return srv.ListenAndServe(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default: serve.listen from the config)")
}
