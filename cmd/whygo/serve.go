package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/container"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/router"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the WhyGO REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := container.New()
			if err != nil {
				return err
			}
			if addr != "" {
				c.Settings.Addr = addr
			}

			handler := router.New(router.RouterConfig{
				Settings:        c.Settings,
				UserHandler:     c.UserContainer.Handler,
				WhygoHandler:    c.WhygoContainer.Handler,
				ProgressHandler: c.ProgressContainer.Handler,
			})

			config.Logger().WithField("addr", c.Settings.Addr).Info("WhyGO API listening")
			return http.ListenAndServe(c.Settings.Addr, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides WHYGO_ADDR)")

	return cmd
}
