package model

// User is an entry in the static user registry. The bcrypt hash never
// leaves the process: it is excluded from every JSON encoding.
type User struct {
	Username       string `json:"username"`
	FullName       string `json:"full_name"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"`
	Disabled       bool   `json:"disabled"`
}

// Profile is the public projection of a User returned by /users/me.
type Profile struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Disabled bool   `json:"disabled"`
}

// Profile returns the public view of the user.
func (u User) Profile() Profile {
	return Profile{
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Disabled: u.Disabled,
	}
}
