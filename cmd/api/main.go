package main

import (
	"net/http"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/container"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/router"
)

func main() {
	c, err := container.New()
	if err != nil {
		config.Logger().WithError(err).Fatal("Failed to start")
	}

	handler := router.New(router.RouterConfig{
		Settings:        c.Settings,
		UserHandler:     c.UserContainer.Handler,
		WhygoHandler:    c.WhygoContainer.Handler,
		ProgressHandler: c.ProgressContainer.Handler,
	})

	log := config.Logger()
	log.WithField("addr", c.Settings.Addr).Info("WhyGO API listening")
	if err := http.ListenAndServe(c.Settings.Addr, handler); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
