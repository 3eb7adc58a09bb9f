package models

// Admin is one backend admin credential entry. It is only ever compared
// against submitted login values and never persisted on this side.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}
