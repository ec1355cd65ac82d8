package models

// User is the dashboard owner's profile as served by the upstream source.
type User struct {
	ID        string `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}
