package controller

import (
	"context"
	"net/http"
	"strconv"

	"agent-hub-service/domain"
	"agent-hub-service/httperrors"
	"agent-hub-service/request"

	"github.com/pkg/errors"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

type ExecutionService interface {
	Run(ctx context.Context, tenantId string, agentId int64, req domain.RunAgentRequest) (*domain.RunAgentResponse, error)
	History(ctx context.Context, tenantId string, query domain.HistoryQuery) ([]domain.Execution, error)
}

type Execution struct {
	service ExecutionService
}

func NewExecution(service ExecutionService) Execution {
	return Execution{
		service: service,
	}
}

func (c Execution) Run(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}
	agentId, err := pathId(r)
	if err != nil {
		return err
	}

	req := domain.RunAgentRequest{}
	err = readJson(r, &req)
	if err != nil {
		return err
	}
	if req.Prompt == "" {
		return httperrors.New(http.StatusBadRequest, "prompt is required", errors.New("run agent: empty prompt"))
	}

	resp, err := c.service.Run(r.Context(), authData.TenantId, agentId, req)
	if errors.Is(err, domain.ErrAgentNotFound) {
		return httperrors.New(http.StatusNotFound, domain.ErrAgentNotFound.Error(), err)
	}
	if err != nil {
		return errors.WithMessage(err, "run agent")
	}
	return writeJson(w, resp)
}

func (c Execution) History(w http.ResponseWriter, r *http.Request) error {
	authData, err := request.AuthDataFromContext(r.Context())
	if err != nil {
		return errors.WithMessage(err, "auth data from context")
	}

	query := domain.HistoryQuery{
		Skip:  queryInt(r, "skip", 0),
		Limit: queryInt(r, "limit", defaultHistoryLimit),
	}
	if query.Skip < 0 {
		query.Skip = 0
	}
	if query.Limit <= 0 || query.Limit > maxHistoryLimit {
		query.Limit = defaultHistoryLimit
	}

	executions, err := c.service.History(r.Context(), authData.TenantId, query)
	if err != nil {
		return errors.WithMessage(err, "execution history")
	}
	return writeJson(w, executions)
}

func queryInt(r *http.Request, name string, defaultValue int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
