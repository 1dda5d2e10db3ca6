package admin

type AccountSummaryDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// UpdateAccountInput is a partial update; empty fields keep their value.
type UpdateAccountInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}
