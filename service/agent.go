package service

import (
	"context"

	"agent-hub-service/domain"
	"agent-hub-service/entity"

	"github.com/pkg/errors"
)

type AgentRepo interface {
	Insert(ctx context.Context, agent entity.Agent, toolIds []int64) (int64, error)
	Get(ctx context.Context, tenantId string, id int64) (*entity.Agent, error)
	GetByTenant(ctx context.Context, tenantId string) ([]entity.Agent, error)
	Update(ctx context.Context, agent entity.Agent, toolIds []int64) (bool, error)
	Delete(ctx context.Context, tenantId string, id int64) (bool, error)
}

type Agent struct {
	repo     AgentRepo
	toolRepo ToolRepo
}

func NewAgent(repo AgentRepo, toolRepo ToolRepo) Agent {
	return Agent{
		repo:     repo,
		toolRepo: toolRepo,
	}
}

func (s Agent) Create(ctx context.Context, tenantId string, req domain.CreateAgentRequest) (*domain.Agent, error) {
	tools, err := s.resolveTools(ctx, tenantId, req.ToolIds)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, entity.Agent{
		TenantId:    tenantId,
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
	}, req.ToolIds)
	if err != nil {
		return nil, errors.WithMessage(err, "insert agent")
	}

	return &domain.Agent{
		Id:          id,
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Tools:       toDomainTools(tools),
	}, nil
}

func (s Agent) Get(ctx context.Context, tenantId string, id int64) (*domain.Agent, error) {
	agent, err := s.repo.Get(ctx, tenantId, id)
	if err != nil {
		return nil, errors.WithMessage(err, "get agent")
	}
	return s.withTools(ctx, *agent)
}

func (s Agent) List(ctx context.Context, tenantId string) ([]domain.Agent, error) {
	agents, err := s.repo.GetByTenant(ctx, tenantId)
	if err != nil {
		return nil, errors.WithMessage(err, "get agents by tenant")
	}

	result := make([]domain.Agent, 0, len(agents))
	for _, agent := range agents {
		withTools, err := s.withTools(ctx, agent)
		if err != nil {
			return nil, err
		}
		result = append(result, *withTools)
	}
	return result, nil
}

func (s Agent) Update(ctx context.Context, tenantId string, id int64, req domain.CreateAgentRequest) (*domain.Agent, error) {
	tools, err := s.resolveTools(ctx, tenantId, req.ToolIds)
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, entity.Agent{
		Id:          id,
		TenantId:    tenantId,
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
	}, req.ToolIds)
	if err != nil {
		return nil, errors.WithMessage(err, "update agent")
	}
	if !updated {
		return nil, domain.ErrAgentNotFound
	}

	return &domain.Agent{
		Id:          id,
		Name:        req.Name,
		Role:        req.Role,
		Description: req.Description,
		Tools:       toDomainTools(tools),
	}, nil
}

func (s Agent) Delete(ctx context.Context, tenantId string, id int64) error {
	deleted, err := s.repo.Delete(ctx, tenantId, id)
	if err != nil {
		return errors.WithMessage(err, "delete agent")
	}
	if !deleted {
		return domain.ErrAgentNotFound
	}
	return nil
}

// resolveTools checks that every requested tool belongs to the tenant.
// A partial match means at least one id is foreign or missing.
func (s Agent) resolveTools(ctx context.Context, tenantId string, toolIds []int64) ([]entity.Tool, error) {
	if len(toolIds) == 0 {
		return []entity.Tool{}, nil
	}
	tools, err := s.toolRepo.GetByIds(ctx, tenantId, toolIds)
	if err != nil {
		return nil, errors.WithMessage(err, "get tools by ids")
	}
	if len(tools) != len(toolIds) {
		return nil, domain.ErrToolsNotFound
	}
	return tools, nil
}

func (s Agent) withTools(ctx context.Context, agent entity.Agent) (*domain.Agent, error) {
	tools, err := s.toolRepo.GetByAgent(ctx, agent.Id)
	if err != nil {
		return nil, errors.WithMessage(err, "get tools by agent")
	}
	return &domain.Agent{
		Id:          agent.Id,
		Name:        agent.Name,
		Role:        agent.Role,
		Description: agent.Description,
		Tools:       toDomainTools(tools),
	}, nil
}
