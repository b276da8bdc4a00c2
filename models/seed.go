package models

// SeedUser is a single entry of the seed file loaded at startup.
type SeedUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
