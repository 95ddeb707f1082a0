package domain

type CreateToolRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type Tool struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
