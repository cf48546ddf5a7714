package entities

// Role tags the two kinds of authenticated identities.

type Role string

const (
	RoleUser   Role = "user"
	RoleWorker Role = "worker"
)

// Valid reports whether the role is one of the known variants.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleWorker:
		return true
	}
	return false
}

// Actor is the authenticated identity initiating an operation, resolved by the
// HTTP middleware from a bearer credential and passed into the use cases as an
// opaque capability token. Name is carried for notification wording and the
// booking's user_name snapshot.
type Actor struct {
	ID   string
	Role Role
	Name string
}
