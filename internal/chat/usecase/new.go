package usecase

import (
	"unibot/internal/chat/repository"
	pkgLog "unibot/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.ReplyRepository
	registry repository.Registry
	botName  string
	webURL   string
}

// New creates a new chat UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.ReplyRepository,
	registry repository.Registry,
	botName string,
	webURL string,
) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		registry: registry,
		botName:  botName,
		webURL:   webURL,
	}
}
