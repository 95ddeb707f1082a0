package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"agent-hub-service/domain"
	"agent-hub-service/entity"
	"agent-hub-service/llm"

	"github.com/pkg/errors"
)

type ExecutionRepo interface {
	Insert(ctx context.Context, execution entity.Execution) (int64, error)
	GetByTenant(ctx context.Context, tenantId string, skip int, limit int) ([]entity.Execution, error)
}

type Execution struct {
	repo      ExecutionRepo
	agentRepo AgentRepo
	toolRepo  ToolRepo
	llmCli    llm.Client
}

func NewExecution(repo ExecutionRepo, agentRepo AgentRepo, toolRepo ToolRepo, llmCli llm.Client) Execution {
	return Execution{
		repo:      repo,
		agentRepo: agentRepo,
		toolRepo:  toolRepo,
		llmCli:    llmCli,
	}
}

func (s Execution) Run(ctx context.Context, tenantId string, agentId int64, req domain.RunAgentRequest) (*domain.RunAgentResponse, error) {
	agent, err := s.agentRepo.Get(ctx, tenantId, agentId)
	if err != nil {
		return nil, errors.WithMessage(err, "get agent")
	}
	tools, err := s.toolRepo.GetByAgent(ctx, agent.Id)
	if err != nil {
		return nil, errors.WithMessage(err, "get tools by agent")
	}

	model := req.Model
	if model == "" {
		model = domain.DefaultModel
	}
	finalPrompt := s.finalPrompt(*agent, tools, req.Prompt)

	response, err := s.llmCli.Complete(ctx, finalPrompt, model)
	if err != nil {
		return nil, errors.WithMessage(err, "llm complete")
	}

	_, err = s.repo.Insert(ctx, entity.Execution{
		TenantId:  tenantId,
		AgentId:   agent.Id,
		Prompt:    finalPrompt,
		Model:     model,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.WithMessage(err, "insert execution")
	}

	return &domain.RunAgentResponse{
		Agent:       agent.Name,
		FinalPrompt: finalPrompt,
		Response:    response,
	}, nil
}

func (s Execution) History(ctx context.Context, tenantId string, query domain.HistoryQuery) ([]domain.Execution, error) {
	executions, err := s.repo.GetByTenant(ctx, tenantId, query.Skip, query.Limit)
	if err != nil {
		return nil, errors.WithMessage(err, "get executions by tenant")
	}

	result := make([]domain.Execution, 0, len(executions))
	for _, execution := range executions {
		result = append(result, domain.Execution{
			Id:        execution.Id,
			AgentId:   execution.AgentId,
			Prompt:    execution.Prompt,
			Model:     execution.Model,
			Response:  execution.Response,
			CreatedAt: execution.CreatedAt,
		})
	}
	return result, nil
}

func (s Execution) finalPrompt(agent entity.Agent, tools []entity.Tool, userPrompt string) string {
	toolNames := make([]string, 0, len(tools))
	for _, tool := range tools {
		toolNames = append(toolNames, tool.Name)
	}
	return fmt.Sprintf(
		"System: You are %s, a %s. %s. You have access to these tools: [%s].\nUser Task: %s",
		agent.Name, agent.Role, agent.Description, strings.Join(toolNames, ", "), userPrompt,
	)
}
