package service

import (
	"emcee.events/emcee/common/secret"
	"emcee.events/emcee/core/config"
	"emcee.events/emcee/internal/queue"
	"emcee.events/emcee/internal/search"
	"emcee.events/emcee/internal/store"
)

type Services struct {
	stores       *store.Stores
	searchIndex  search.Client
	producer     queue.Producer
	sealer       *secret.Sealer
	workOSCfg    config.WorkOSConfig
	storageCfg   config.StorageConfig
	guestSecret  string
	shareBaseURL string
}

func NewServices(
	stores *store.Stores,
	searchIndex search.Client,
	producer queue.Producer,
	sealer *secret.Sealer,
	cfg *config.Config,
) *Services {
	return &Services{
		stores:       stores,
		searchIndex:  searchIndex,
		producer:     producer,
		sealer:       sealer,
		workOSCfg:    cfg.WorkOS,
		storageCfg:   cfg.Storage,
		guestSecret:  cfg.Guest.TokenSecret,
		shareBaseURL: cfg.ShareBaseURL,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.workOSCfg)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores.Workspaces(), s.stores.Members())
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores.Members(), s.stores.Users())
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores.Projects(), s.searchIndex)
}

func (s *Services) Events() EventService {
	return NewEventService(
		s.stores.Events(),
		s.stores.Projects(),
		s.stores.Experiences(),
		s.stores.Guests(),
		s.stores.Captures(),
		s.searchIndex,
	)
}

func (s *Services) Experiences() ExperienceService {
	return NewExperienceService(s.stores.Experiences(), s.stores.Projects(), s.stores.Presets(), s.searchIndex)
}

func (s *Services) Presets() PresetService {
	return NewPresetService(s.stores.Presets(), s.searchIndex)
}

func (s *Services) GuestTokens() GuestTokenService {
	return NewGuestTokenService(s.guestSecret)
}

func (s *Services) GuestFlow() GuestFlowService {
	return NewGuestFlowService(
		s.stores.Guests(),
		s.stores.Events(),
		s.stores.Experiences(),
		s.stores.Captures(),
		s.GuestTokens(),
		s.Transforms(),
		s.shareBaseURL,
	)
}

func (s *Services) Transforms() TransformService {
	return NewTransformService(s.stores.TransformJobs(), s.stores.Captures(), s.stores.Presets(), s.producer)
}

func (s *Services) Integrations() IntegrationService {
	return NewIntegrationService(s.stores.Integrations(), s.sealer, s.storageCfg)
}

func (s *Services) Search() SearchService {
	return NewSearchService(
		s.stores.Projects(),
		s.stores.Events(),
		s.stores.Experiences(),
		s.stores.Presets(),
		s.searchIndex,
	)
}
