package service

import (
	"github.com/dom/team-balancer/internal/config"
)

type Services struct {
	Teams *TeamService
}

func NewServices(cfg *config.Config) *Services {
	return &Services{
		Teams: NewTeamService(cfg),
	}
}
