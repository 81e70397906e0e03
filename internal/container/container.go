package container

import (
	"fmt"

	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/auth"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/config"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/progress"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/user"
	"github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"
)

// Container wires every store and service once at process start. The JSON
// stores load their files here and live for the process lifetime.
type Container struct {
	Settings          *config.Settings
	WhygoContainer    *whygo.Container
	ProgressContainer *progress.Container
	UserContainer     *user.Container
}

func New() (*Container, error) {
	config.Init()
	settings := config.Load()
	auth.Init(settings.JWTSecret)

	whygoContainer, err := whygo.NewContainer(settings.DataDir)
	if err != nil {
		return nil, fmt.Errorf("load whygo data: %w", err)
	}

	progressContainer, err := progress.NewContainer(settings.DataDir, whygoContainer.Repository)
	if err != nil {
		return nil, fmt.Errorf("load progress data: %w", err)
	}

	userContainer := user.NewContainer(whygoContainer.Repository, whygoContainer.Service, settings)

	return &Container{
		Settings:          settings,
		WhygoContainer:    whygoContainer,
		ProgressContainer: progressContainer,
		UserContainer:     userContainer,
	}, nil
}
