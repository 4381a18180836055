package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, enabling zero-touch logging where business
// context (workspace_id, guest_id, etc.) is automatically included in all log statements.
type LogFields struct {
	WorkspaceID *int64  // Workspace ID
	ProjectID   *int64  // Project ID
	EventID     *int64  // Event ID
	GuestID     *int64  // Guest ID
	JobID       *int64  // Transform job ID
	MessageID   *string // Redis stream message ID
	Component   string  // Component name (OTel semantic convention style, e.g., "emcee.worker.transform")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

// mergeFields merges two LogFields, preferring non-nil/non-empty values from 'new'.
func mergeFields(existing, new LogFields) LogFields {
	result := existing

	if new.WorkspaceID != nil {
		result.WorkspaceID = new.WorkspaceID
	}
	if new.ProjectID != nil {
		result.ProjectID = new.ProjectID
	}
	if new.EventID != nil {
		result.EventID = new.EventID
	}
	if new.GuestID != nil {
		result.GuestID = new.GuestID
	}
	if new.JobID != nil {
		result.JobID = new.JobID
	}
	if new.MessageID != nil {
		result.MessageID = new.MessageID
	}
	if new.Component != "" {
		result.Component = new.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{GuestID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like prompts or error messages.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
