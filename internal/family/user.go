package family

import (
	"strings"

	"github.com/google/uuid"
)

// User is the person whose hereditary risk is assessed.
//
// A User is not safe for concurrent mutation. Callers that share one across
// goroutines must not call AddFamilyMember while an evaluation is reading it.
type User struct {
	id      uuid.UUID
	name    string
	members []*FamilyMember
}

// NewUser builds a user with a trimmed, non-blank name and no family.
func NewUser(name string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "name is required")
	}

	return &User{
		id:   uuid.New(),
		name: name,
	}, nil
}

// AddFamilyMember appends m. Adding the same member twice is allowed.
func (u *User) AddFamilyMember(m *FamilyMember) error {
	if m == nil {
		return invalid("member", "family member is required")
	}
	u.members = append(u.members, m)
	return nil
}

func (u *User) ID() uuid.UUID { return u.id }
func (u *User) Name() string  { return u.name }

// FamilyMembers returns a copy of the member list in insertion order.
func (u *User) FamilyMembers() []*FamilyMember {
	out := make([]*FamilyMember, len(u.members))
	copy(out, u.members)
	return out
}
