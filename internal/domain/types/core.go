package types

// Username identifies a household member account on the backend.
type Username string

// String returns the string form of the username.
func (u Username) String() string { return string(u) }

// ChoreID uniquely identifies a chore within one fetched list.
type ChoreID string

// String returns the string form of the identifier.
func (id ChoreID) String() string { return string(id) }

// MemberID uniquely identifies a household member.
type MemberID string

// String returns the string form of the identifier.
func (id MemberID) String() string { return string(id) }
