package student

type ProfileInput struct {
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Skills  string `json:"skills"`
	CvURL   string `json:"cv_url"`
}
