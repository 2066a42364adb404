package credentials

// User is a persisted account row. Rows are written once and never updated.
type User struct {
	Email        string
	UserName     string
	Name         string
	PasswordHash string
}

// Profile is what a successful authentication hands back to the caller.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
