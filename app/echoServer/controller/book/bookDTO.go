package book

type ReviewReq struct {
	User   string `json:"user"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}
