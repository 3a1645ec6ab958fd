package types

// HouseholdMember is a user belonging to the shared house.
type HouseholdMember struct {
	UserID MemberID `json:"UserID" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
}
