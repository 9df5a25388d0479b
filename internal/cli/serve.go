package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"termfolio/internal/system"
	"termfolio/internal/webui/server"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "127.0.0.1:8080", "address to bind (host:port)")
	serveCmd.Flags().BoolP("watch", "w", false, "reload content.json when it changes")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		watch, _ := cmd.Flags().GetBool("watch")
		srv := &server.Server{Addr: addr, Watch: watch}

		// Handle Ctrl+C
		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		system.Logger.Info("starting api server", "addr", addr, "watch", watch)
		if err := srv.Start(ctx); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		}
		return nil
	},
}
