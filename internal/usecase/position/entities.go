package position

type PositionInput struct {
	CompanyID   uint64 `json:"company_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Slots       int    `json:"slots"`
	Status      string `json:"status"`
}
