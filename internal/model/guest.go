package model

import "time"

// FlowState tracks where a guest is in the event flow. States advance in a
// fixed order; pregate is skipped when the event disables it.
type FlowState string

const (
	FlowStateWelcome    FlowState = "welcome"
	FlowStatePregate    FlowState = "pregate"
	FlowStateExperience FlowState = "experience"
	FlowStatePreshare   FlowState = "preshare"
	FlowStateShare      FlowState = "share"
)

var flowOrder = map[FlowState]int{
	FlowStateWelcome:    1,
	FlowStatePregate:    2,
	FlowStateExperience: 3,
	FlowStatePreshare:   4,
	FlowStateShare:      5,
}

func (s FlowState) Valid() bool {
	_, ok := flowOrder[s]
	return ok
}

// CanAdvanceTo reports whether target is the legal next state from s.
// Moving from welcome directly to experience is allowed only when the event
// has no pregate; callers pass pregateEnabled accordingly.
func (s FlowState) CanAdvanceTo(target FlowState, pregateEnabled bool) bool {
	from, ok := flowOrder[s]
	if !ok {
		return false
	}
	to, ok := flowOrder[target]
	if !ok {
		return false
	}

	if to == from+1 {
		return true
	}
	// welcome -> experience skips pregate
	return s == FlowStateWelcome && target == FlowStateExperience && !pregateEnabled
}

type Guest struct {
	ID                   int64             `json:"id"`
	ProjectID            int64             `json:"project_id"`
	EventID              int64             `json:"event_id"`
	DisplayName          *string           `json:"display_name,omitempty"`
	Email                *string           `json:"email,omitempty"`
	PregateAnswers       map[string]string `json:"pregate_answers,omitempty"`
	FlowState            FlowState         `json:"flow_state"`
	CompletedExperiences []int64           `json:"completed_experiences"`
	ConsentedAt          *time.Time        `json:"consented_at,omitempty"`
	LastSeenAt           time.Time         `json:"last_seen_at"`
	CreatedAt            time.Time         `json:"created_at"`
	UpdatedAt            time.Time         `json:"updated_at"`
}

// HasCompleted reports whether the guest finished the given experience.
func (g *Guest) HasCompleted(experienceID int64) bool {
	for _, id := range g.CompletedExperiences {
		if id == experienceID {
			return true
		}
	}
	return false
}
