package entity

import (
	"time"
)

type Tool struct {
	Id          int64
	TenantId    string
	Name        string
	Description string
}

type Agent struct {
	Id          int64
	TenantId    string
	Name        string
	Role        string
	Description string
}

type Execution struct {
	Id        int64
	TenantId  string
	AgentId   int64
	Prompt    string
	Model     string
	Response  string
	CreatedAt time.Time
}
