// Package domain defines the core domain models for the consultation service.
package domain

// Role identifies who authored a message. It is a closed set: persisted
// messages only ever carry one of the two constants below.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant:
		return true
	}
	return false
}
