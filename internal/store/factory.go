package store

import (
	"emcee.events/emcee/core/db"
)

type Stores struct {
	db *db.DB
}

func NewStores(database *db.DB) *Stores {
	return &Stores{db: database}
}

func (s *Stores) Users() UserStore {
	return newUserStore(s.db)
}

func (s *Stores) Sessions() SessionStore {
	return newSessionStore(s.db)
}

func (s *Stores) Workspaces() WorkspaceStore {
	return newWorkspaceStore(s.db)
}

func (s *Stores) Members() MemberStore {
	return newMemberStore(s.db)
}

func (s *Stores) Projects() ProjectStore {
	return newProjectStore(s.db)
}

func (s *Stores) Events() EventStore {
	return newEventStore(s.db)
}

func (s *Stores) Experiences() ExperienceStore {
	return newExperienceStore(s.db)
}

func (s *Stores) Presets() PresetStore {
	return newPresetStore(s.db)
}

func (s *Stores) Guests() GuestStore {
	return newGuestStore(s.db)
}

func (s *Stores) Captures() CaptureStore {
	return newCaptureStore(s.db)
}

func (s *Stores) Integrations() IntegrationStore {
	return newIntegrationStore(s.db)
}

func (s *Stores) TransformJobs() TransformJobStore {
	return newTransformJobStore(s.db)
}
