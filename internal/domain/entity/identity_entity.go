package entity

// Identity is a user resolved by the identity service. Referenced, never owned.
type Identity struct {
	ID    string
	Email string
}
