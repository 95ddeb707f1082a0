package domain

type CreateAgentRequest struct {
	Name        string  `json:"name" validate:"required"`
	Role        string  `json:"role"`
	Description string  `json:"description"`
	ToolIds     []int64 `json:"toolIds"`
}

type Agent struct {
	Id          int64  `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
	Tools       []Tool `json:"tools"`
}
