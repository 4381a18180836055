package example

type Role string

const (
	RoleOwner  Role = "owner"
	RoleViewer Role = "viewer"
)

type FlowState string

const (
	FlowStateLobby FlowState = "lobby"
)

type ExperienceKind string

const (
	ExperienceKindPhoto ExperienceKind = "photo"
)

type Member struct {
	Role Role
}

type Guest struct {
	FlowState FlowState
}

func bad() {
	m := &Member{}
	m.Role = "superuser" // want "enum field Role assigned string literal"

	g := &Guest{}
	g.FlowState = "afterparty" // want "enum field FlowState assigned string literal"
}

func good() {
	m := &Member{}
	m.Role = RoleOwner // OK: using constant

	g := &Guest{}
	g.FlowState = FlowStateLobby // OK: using constant
}

func alsoGood() {
	// OK: Variable, not literal
	kind := ExperienceKindPhoto
	e := struct{ Kind ExperienceKind }{Kind: kind}
	_ = e
}
