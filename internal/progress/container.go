package progress

import "github.com/luke-peterson-kartel/Kartel-Whygos/internal/whygo"

type Container struct {
	Handler    *Handler
	Service    Service
	Repository Repository
}

func NewContainer(dataDir string, goals whygo.Repository) (*Container, error) {
	repo, err := NewJSONRepository(dataDir)
	if err != nil {
		return nil, err
	}
	service := NewService(goals, repo)
	handler := NewHandler(service)

	return &Container{
		Handler:    handler,
		Service:    service,
		Repository: repo,
	}, nil
}
