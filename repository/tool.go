package repository

import (
	"context"

	"agent-hub-service/db"
	"agent-hub-service/entity"

	"github.com/pkg/errors"
)

type Tool struct {
	cli *db.Client
}

func NewTool(cli *db.Client) Tool {
	return Tool{
		cli: cli,
	}
}

func (r Tool) Insert(ctx context.Context, tool entity.Tool) (int64, error) {
	result, err := r.cli.Conn().ExecContext(ctx,
		`INSERT INTO tools (tenant_id, name, description) VALUES (?, ?, ?)`,
		tool.TenantId, tool.Name, tool.Description,
	)
	if err != nil {
		return 0, errors.WithMessage(err, "insert tool")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.WithMessage(err, "last insert id")
	}
	return id, nil
}

func (r Tool) GetByTenant(ctx context.Context, tenantId string) ([]entity.Tool, error) {
	rows, err := r.cli.Conn().QueryContext(ctx,
		`SELECT id, tenant_id, name, description FROM tools WHERE tenant_id = ? ORDER BY id`,
		tenantId,
	)
	if err != nil {
		return nil, errors.WithMessage(err, "select tools")
	}
	defer rows.Close()

	tools := make([]entity.Tool, 0)
	for rows.Next() {
		tool := entity.Tool{}
		err := rows.Scan(&tool.Id, &tool.TenantId, &tool.Name, &tool.Description)
		if err != nil {
			return nil, errors.WithMessage(err, "scan tool")
		}
		tools = append(tools, tool)
	}
	return tools, errors.WithMessage(rows.Err(), "rows err")
}

func (r Tool) GetByIds(ctx context.Context, tenantId string, ids []int64) ([]entity.Tool, error) {
	if len(ids) == 0 {
		return []entity.Tool{}, nil
	}

	query := `SELECT id, tenant_id, name, description FROM tools WHERE tenant_id = ? AND id IN (`
	args := []any{tenantId}
	for i, id := range ids {
		if i > 0 {
			query += ", "
		}
		query += "?"
		args = append(args, id)
	}
	query += `) ORDER BY id`

	rows, err := r.cli.Conn().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.WithMessage(err, "select tools by ids")
	}
	defer rows.Close()

	tools := make([]entity.Tool, 0, len(ids))
	for rows.Next() {
		tool := entity.Tool{}
		err := rows.Scan(&tool.Id, &tool.TenantId, &tool.Name, &tool.Description)
		if err != nil {
			return nil, errors.WithMessage(err, "scan tool")
		}
		tools = append(tools, tool)
	}
	return tools, errors.WithMessage(rows.Err(), "rows err")
}

func (r Tool) Update(ctx context.Context, tool entity.Tool) (bool, error) {
	result, err := r.cli.Conn().ExecContext(ctx,
		`UPDATE tools SET name = ?, description = ? WHERE id = ? AND tenant_id = ?`,
		tool.Name, tool.Description, tool.Id, tool.TenantId,
	)
	if err != nil {
		return false, errors.WithMessage(err, "update tool")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.WithMessage(err, "rows affected")
	}
	return affected > 0, nil
}

func (r Tool) Delete(ctx context.Context, tenantId string, id int64) (bool, error) {
	result, err := r.cli.Conn().ExecContext(ctx,
		`DELETE FROM tools WHERE id = ? AND tenant_id = ?`,
		id, tenantId,
	)
	if err != nil {
		return false, errors.WithMessage(err, "delete tool")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.WithMessage(err, "rows affected")
	}
	return affected > 0, nil
}

func (r Tool) GetByAgent(ctx context.Context, agentId int64) ([]entity.Tool, error) {
	rows, err := r.cli.Conn().QueryContext(ctx,
		`SELECT t.id, t.tenant_id, t.name, t.description
		 FROM tools t JOIN agent_tools at ON at.tool_id = t.id
		 WHERE at.agent_id = ? ORDER BY t.id`,
		agentId,
	)
	if err != nil {
		return nil, errors.WithMessage(err, "select agent tools")
	}
	defer rows.Close()

	tools := make([]entity.Tool, 0)
	for rows.Next() {
		tool := entity.Tool{}
		err := rows.Scan(&tool.Id, &tool.TenantId, &tool.Name, &tool.Description)
		if err != nil {
			return nil, errors.WithMessage(err, "scan tool")
		}
		tools = append(tools, tool)
	}
	return tools, errors.WithMessage(rows.Err(), "rows err")
}
