package models

// User is a participant. Identity is the id, not the name.
type User struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Color *Color  `json:"color"`
	Bio   *string `json:"bio"`
}

func (u User) Equal(other User) bool {
	return u.ID == other.ID
}

// Less orders users by display name.
func (u User) Less(other User) bool {
	return u.Name < other.Name
}
