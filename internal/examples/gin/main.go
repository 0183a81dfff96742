package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/victormf2/serviceprovider"
	"github.com/victormf2/serviceprovider/internal/examples/gin/infra"
	"github.com/victormf2/serviceprovider/internal/examples/gin/setup"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	var addr string
	var storage string

	command := &cobra.Command{
		Use:   "users",
		Short: "Users CRUD server built with serviceprovider",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := infra.LoadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				config.Addr = addr
			}
			if cmd.Flags().Changed("storage") {
				config.Storage = storage
				if err := config.Validate(); err != nil {
					return err
				}
			}

			return run(config)
		},
	}

	command.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	command.Flags().StringVar(&addr, "addr", "", "address to listen on, overrides the config")
	command.Flags().StringVar(&storage, "storage", "", "sqlite or memory, overrides the config")

	return command
}

// Some of this code was taken from the GIN graceful shutdown example
// https://github.com/gin-gonic/examples/blob/9fd0db1d6a7cdfd8dd1e0b163146674ea9d4ecfd/graceful-shutdown/graceful-shutdown/notify-with-context/server.go
func run(config infra.Config) error {
	// First create the Container
	c := serviceprovider.NewContainer()

	// Then register all dependencies. You can do the registrations inline,
	// but it's usually better to separate that logic in a function, so you
	// can use it in your tests.
	setup.RegisterServices(c, config)
	setup.RegisterHttpServer(c)

	// Build the whole graph now, the container must not be used concurrently
	// once requests start coming in.
	server, err := serviceprovider.Get[*http.Server](c)
	if err != nil {
		return fmt.Errorf("failed to build the server: %w", err)
	}
	log, err := serviceprovider.Get[*logrus.Entry](c)
	if err != nil {
		return err
	}

	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		log.WithField("addr", server.Addr).Info("listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Listen for the interrupt signal.
	select {
	case err := <-serverErrors:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	// Restore default behavior on the interrupt signal and notify user of shutdown.
	stop()
	log.Info("shutting down gracefully, press Ctrl+C again to force")

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exiting")
	return nil
}
