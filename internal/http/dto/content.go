package dto

// UpdateDraftRequest carries a partial config merge for any versioned
// content document. Present keys overwrite, absent keys are left alone;
// the service bumps the draft version.
type UpdateDraftRequest struct {
	Patch map[string]any `json:"patch" binding:"required"`
}

// RenameRequest renames any versioned content document without touching
// its config.
type RenameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}
