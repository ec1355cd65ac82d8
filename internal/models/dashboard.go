package models

// Dashboard is the full document served by the upstream static source:
// the profile, the precomputed period totals and the transaction history.
type Dashboard struct {
	User         User          `json:"user"`
	Summary      Summary       `json:"summary"`
	Transactions []Transaction `json:"transactions"`
}
