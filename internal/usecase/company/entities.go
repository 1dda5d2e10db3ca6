package company

type ProfileInput struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	Description string `json:"description"`
}
