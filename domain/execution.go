package domain

import (
	"time"
)

const DefaultModel = "gpt-4o"

type RunAgentRequest struct {
	Prompt string `json:"prompt" validate:"required"`
	Model  string `json:"model"`
}

type RunAgentResponse struct {
	Agent       string `json:"agent"`
	FinalPrompt string `json:"finalPrompt"`
	Response    string `json:"response"`
}

type Execution struct {
	Id        int64     `json:"id"`
	AgentId   int64     `json:"agentId"`
	Prompt    string    `json:"prompt"`
	Model     string    `json:"model"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"createdAt"`
}

type HistoryQuery struct {
	Skip  int
	Limit int
}
