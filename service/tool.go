package service

import (
	"context"

	"agent-hub-service/domain"
	"agent-hub-service/entity"

	"github.com/pkg/errors"
)

type ToolRepo interface {
	Insert(ctx context.Context, tool entity.Tool) (int64, error)
	GetByTenant(ctx context.Context, tenantId string) ([]entity.Tool, error)
	GetByIds(ctx context.Context, tenantId string, ids []int64) ([]entity.Tool, error)
	Update(ctx context.Context, tool entity.Tool) (bool, error)
	Delete(ctx context.Context, tenantId string, id int64) (bool, error)
	GetByAgent(ctx context.Context, agentId int64) ([]entity.Tool, error)
}

type Tool struct {
	repo ToolRepo
}

func NewTool(repo ToolRepo) Tool {
	return Tool{
		repo: repo,
	}
}

func (s Tool) Create(ctx context.Context, tenantId string, req domain.CreateToolRequest) (*domain.Tool, error) {
	id, err := s.repo.Insert(ctx, entity.Tool{
		TenantId:    tenantId,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "insert tool")
	}
	return &domain.Tool{
		Id:          id,
		Name:        req.Name,
		Description: req.Description,
	}, nil
}

func (s Tool) List(ctx context.Context, tenantId string) ([]domain.Tool, error) {
	tools, err := s.repo.GetByTenant(ctx, tenantId)
	if err != nil {
		return nil, errors.WithMessage(err, "get tools by tenant")
	}
	return toDomainTools(tools), nil
}

func (s Tool) Update(ctx context.Context, tenantId string, id int64, req domain.CreateToolRequest) (*domain.Tool, error) {
	updated, err := s.repo.Update(ctx, entity.Tool{
		Id:          id,
		TenantId:    tenantId,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, errors.WithMessage(err, "update tool")
	}
	if !updated {
		return nil, domain.ErrToolNotFound
	}
	return &domain.Tool{
		Id:          id,
		Name:        req.Name,
		Description: req.Description,
	}, nil
}

func (s Tool) Delete(ctx context.Context, tenantId string, id int64) error {
	deleted, err := s.repo.Delete(ctx, tenantId, id)
	if err != nil {
		return errors.WithMessage(err, "delete tool")
	}
	if !deleted {
		return domain.ErrToolNotFound
	}
	return nil
}

func toDomainTools(tools []entity.Tool) []domain.Tool {
	result := make([]domain.Tool, 0, len(tools))
	for _, tool := range tools {
		result = append(result, domain.Tool{
			Id:          tool.Id,
			Name:        tool.Name,
			Description: tool.Description,
		})
	}
	return result
}
