package repository

import (
	"context"

	"agent-hub-service/db"
	"agent-hub-service/entity"

	"github.com/pkg/errors"
)

type Execution struct {
	cli *db.Client
}

func NewExecution(cli *db.Client) Execution {
	return Execution{
		cli: cli,
	}
}

func (r Execution) Insert(ctx context.Context, execution entity.Execution) (int64, error) {
	result, err := r.cli.Conn().ExecContext(ctx,
		`INSERT INTO executions (tenant_id, agent_id, prompt, model, response, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		execution.TenantId, execution.AgentId, execution.Prompt,
		execution.Model, execution.Response, execution.CreatedAt,
	)
	if err != nil {
		return 0, errors.WithMessage(err, "insert execution")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.WithMessage(err, "last insert id")
	}
	return id, nil
}

func (r Execution) GetByTenant(ctx context.Context, tenantId string, skip int, limit int) ([]entity.Execution, error) {
	rows, err := r.cli.Conn().QueryContext(ctx,
		`SELECT id, tenant_id, agent_id, prompt, model, response, created_at
		 FROM executions WHERE tenant_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		tenantId, limit, skip,
	)
	if err != nil {
		return nil, errors.WithMessage(err, "select executions")
	}
	defer rows.Close()

	executions := make([]entity.Execution, 0)
	for rows.Next() {
		execution := entity.Execution{}
		err := rows.Scan(&execution.Id, &execution.TenantId, &execution.AgentId,
			&execution.Prompt, &execution.Model, &execution.Response, &execution.CreatedAt)
		if err != nil {
			return nil, errors.WithMessage(err, "scan execution")
		}
		executions = append(executions, execution)
	}
	return executions, errors.WithMessage(rows.Err(), "rows err")
}
