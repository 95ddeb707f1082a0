package controller

import (
	"context"
	"net/http"

	"agent-hub-service/domain"
	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/pkg/errors"
)

type AgentService interface {
	Create(ctx context.Context, tenantId string, req domain.CreateAgentRequest) (*domain.Agent, error)
	Get(ctx context.Context, tenantId string, id int64) (*domain.Agent, error)
	List(ctx context.Context, tenantId string) ([]domain.Agent, error)
	Update(ctx context.Context, tenantId string, id int64, req domain.CreateAgentRequest) (*domain.Agent, error)
	Delete(ctx context.Context, tenantId string, id int64) error
}

type Agent struct {
	service AgentService
}

func NewAgent(service AgentService) Agent {
	return Agent{
		service: service,
	}
}

func (c Agent) Create(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}

	req := domain.CreateAgentRequest{}
	err = readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return httperrors.New(http.StatusBadRequest, "name is required", errors.New("create agent: empty name"))
	}

	agent, err := c.service.Create(r.Context(), authData.TenantId, req)
	if errors.Is(err, domain.ErrToolsNotFound) {
		return httperrors.New(http.StatusBadRequest, domain.ErrToolsNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "create agent")
	}
	return writeJson(w, agent)
}

func (c Agent) Get(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	id, err := pathId(r)
	if err != nil {
		return err
	}

	agent, err := c.service.Get(r.Context(), authData.TenantId, id)
	if errors.Is(err, domain.ErrAgentNotFound) {
		return httperrors.New(http.StatusNotFound, domain.ErrAgentNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "get agent")
	}
	return writeJson(w, agent)
}

func (c Agent) List(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}

	agents, err := c.service.List(r.Context(), authData.TenantId)
	if err != nil {
		return errors.WithMessage(err, "list agents")
	}
	return writeJson(w, agents)
}

func (c Agent) Update(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	id, err := pathId(r)
	if err != nil {
		return err
	}

	req := domain.CreateAgentRequest{}
	err = readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return httperrors.New(http.StatusBadRequest, "name is required", errors.New("update agent: empty name"))
	}

	agent, err := c.service.Update(r.Context(), authData.TenantId, id, req)
	switch {
	case errors.Is(err, domain.ErrAgentNotFound):
		return httperrors.New(http.StatusNotFound, domain.ErrAgentNotFound.Error(), err)
	case errors.Is(err, domain.ErrToolsNotFound):
		return httperrors.New(http.StatusBadRequest, domain.ErrToolsNotFound.Error(), err)
	case err != nil:
		return errors.WithMessage(err, "update agent")
	}
	return writeJson(w, agent)
}

func (c Agent) Delete(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	id, err := pathId(r)
	if err != nil {
		return err
	}

	err = c.service.Delete(r.Context(), authData.TenantId, id)
	if errors.Is(err, domain.ErrAgentNotFound) {
		return httperrors.New(http.StatusNotFound, domain.ErrAgentNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "delete agent")
	}
	return writeJson(w, map[string]string{"detail": "Agent deleted"})
}
