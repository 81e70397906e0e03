package user

import (
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(repo whygo.Repository, whygoService whygo.Service, settings *config.Settings) *Container {
	service := NewService(repo)
	handler := NewHandler(service, whygoService, settings)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
