package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ruteri/storage-url/cmd/flags"
	"github.com/ruteri/storage-url/httpserver"
	"github.com/ruteri/storage-url/storage"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "storage-url-server",
		Usage: "Serve the storage URL resolver API",
		Flags: append(append([]cli.Flag{}, flags.ServerFlags...), flags.LogFlags...),
		Action: func(cCtx *cli.Context) error {
			logger := flags.SetupLogger(cCtx)
			cfg := flags.ConfigureServer(cCtx, logger)

			handler := httpserver.NewHandler(storage.NewConfigResolver(logger), logger)

			server, err := httpserver.New(cfg, handler)
			if err != nil {
				logger.Error("Failed to create server", "err", err)
				return err
			}

			logger.Info("Starting server")
			server.RunInBackground()

			// Wait for termination signal
			exit := make(chan os.Signal, 1)
			signal.Notify(exit, os.Interrupt, syscall.SIGTERM)

			logger.Info("Server is running, press Ctrl+C to stop")
			<-exit
			logger.Info("Shutdown signal received")

			server.Shutdown()
			logger.Info("Server shutdown complete")

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
