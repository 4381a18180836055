package model

// ContentStatus is the lifecycle of versioned content (projects, events,
// experiences, AI presets). Deleted content stays in the database but is
// invisible to every read path.
type ContentStatus string

const (
	ContentStatusDraft   ContentStatus = "draft"
	ContentStatusActive  ContentStatus = "active"
	ContentStatusDeleted ContentStatus = "deleted"
)
