package controller

import (
	"context"
	"net/http"
	"strconv"

	"agent-hub-service/domain"
	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

type ToolService interface {
	Create(ctx context.Context, tenantId string, req domain.CreateToolRequest) (*domain.Tool, error)
	List(ctx context.Context, tenantId string) ([]domain.Tool, error)
	Update(ctx context.Context, tenantId string, id int64, req domain.CreateToolRequest) (*domain.Tool, error)
	Delete(ctx context.Context, tenantId string, id int64) error
}

type Tool struct {
	service ToolService
}

func NewTool(service ToolService) Tool {
	return Tool{
		service: service,
	}
}

func (c Tool) Create(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}

	req := domain.CreateToolRequest{}
	err = readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return httperrors.New(http.StatusBadRequest, "name is required", errors.New("create tool: empty name"))
	}

	tool, err := c.service.Create(r.Context(), authData.TenantId, req)
	if err != nil {
		return errors.WithMessage(err, "create tool")
	}
	return writeJson(w, tool)
}

func (c Tool) List(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}

	tools, err := c.service.List(r.Context(), authData.TenantId)
	if err != nil {
		return errors.WithMessage(err, "list tools")
	}
	return writeJson(w, tools)
}

func (c Tool) Update(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	id, err := pathId(r)
	if err != nil {
		return err
	}

	req := domain.CreateToolRequest{}
	err = readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Name == "" {
		return httperrors.New(http.StatusBadRequest, "name is required", errors.New("update tool: empty name"))
	}

	tool, err := c.service.Update(r.Context(), authData.TenantId, id, req)
	if errors.Is(err, domain.ErrToolNotFound) {
		return httperrors.New(http.StatusNotFound, domain.ErrToolNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "update tool")
	}
	return writeJson(w, tool)
}

func (c Tool) Delete(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	id, err := pathId(r)
	if err != nil {
		return err
	}

	err = c.service.Delete(r.Context(), authData.TenantId, id)
	if errors.Is(err, domain.ErrToolNotFound) {
		return httperrors.New(http.StatusNotFound, domain.ErrToolNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "delete tool")
	}
	return writeJson(w, map[string]string{"detail": "Tool deleted"})
}

func pathId(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, httperrors.New(
			http.StatusBadRequest,
			"invalid id",
			errors.WithMessagef(err, "parse id '%s'", raw),
		)
	}
	return id, nil
}
