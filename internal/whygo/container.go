package whygo

type Container struct {
	Handler    *Handler
	Service    Service
	Repository Repository
}

func NewContainer(dataDir string) (*Container, error) {
	repo, err := NewJSONRepository(dataDir)
	if err != nil {
		return nil, err
	}
	service := NewService(repo)
	handler := NewHandler(service)

	return &Container{
		Handler:    handler,
		Service:    service,
		Repository: repo,
	}, nil
}
