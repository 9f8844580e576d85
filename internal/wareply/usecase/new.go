package usecase

import (
	"unibot/internal/class/repository"
	"unibot/internal/wareply"
	"unibot/pkg/datemath"
	"unibot/pkg/log"
)

const (
	// maxResults caps list replies so WhatsApp messages stay readable.
	maxResults = 5
	// memberGroupLimit caps groups in a member-listing reply.
	memberGroupLimit = 3
	// maxMemberResults caps members shown per group.
	maxMemberResults = 5
)

type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	dates *datemath.Parser
}

var _ wareply.UseCase = implUseCase{}

// New creates a new wareply usecase on top of the class data store.
func New(l log.Logger, repo repository.Repository, dates *datemath.Parser) wareply.UseCase {
	return implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
	}
}
