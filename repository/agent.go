package repository

import (
	"context"
	"database/sql"

	"agent-hub-service/db"
	"agent-hub-service/domain"
	"agent-hub-service/entity"

	"github.com/pkg/errors"
)

type Agent struct {
	cli *db.Client
}

func NewAgent(cli *db.Client) Agent {
	return Agent{
		cli: cli,
	}
}

func (r Agent) Insert(ctx context.Context, agent entity.Agent, toolIds []int64) (int64, error) {
	tx, err := r.cli.Conn().BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.WithMessage(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`INSERT INTO agents (tenant_id, name, role, description) VALUES (?, ?, ?, ?)`,
		agent.TenantId, agent.Name, agent.Role, agent.Description,
	)
	if err != nil {
		return 0, errors.WithMessage(err, "insert agent")
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, errors.WithMessage(err, "last insert id")
	}

	err = r.linkTools(ctx, tx, id, toolIds)
	if err != nil {
		return 0, errors.WithMessage(err, "link tools")
	}

	err = tx.Commit()
	if err != nil {
		return 0, errors.WithMessage(err, "commit tx")
	}
	return id, nil
}

func (r Agent) Get(ctx context.Context, tenantId string, id int64) (*entity.Agent, error) {
	agent := entity.Agent{}
	err := r.cli.Conn().QueryRowContext(ctx,
		`SELECT id, tenant_id, name, role, description FROM agents WHERE id = ? AND tenant_id = ?`,
		id, tenantId,
	).Scan(&agent.Id, &agent.TenantId, &agent.Name, &agent.Role, &agent.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrAgentNotFound
	}
	if err != nil {
		return nil, errors.WithMessage(err, "select agent")
	}
	return &agent, nil
}

func (r Agent) GetByTenant(ctx context.Context, tenantId string) ([]entity.Agent, error) {
	rows, err := r.cli.Conn().QueryContext(ctx,
		`SELECT id, tenant_id, name, role, description FROM agents WHERE tenant_id = ? ORDER BY id`,
		tenantId,
	)
	if err != nil {
		return nil, errors.WithMessage(err, "select agents")
	}
	defer rows.Close()

	agents := make([]entity.Agent, 0)
	for rows.Next() {
		agent := entity.Agent{}
		err := rows.Scan(&agent.Id, &agent.TenantId, &agent.Name, &agent.Role, &agent.Description)
		if err != nil {
			return nil, errors.WithMessage(err, "scan agent")
		}
		agents = append(agents, agent)
	}
	return agents, errors.WithMessage(rows.Err(), "rows err")
}

func (r Agent) Update(ctx context.Context, agent entity.Agent, toolIds []int64) (bool, error) {
	tx, err := r.cli.Conn().BeginTx(ctx, nil)
	if err != nil {
		return false, errors.WithMessage(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		`UPDATE agents SET name = ?, role = ?, description = ? WHERE id = ? AND tenant_id = ?`,
		agent.Name, agent.Role, agent.Description, agent.Id, agent.TenantId,
	)
	if err != nil {
		return false, errors.WithMessage(err, "update agent")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.WithMessage(err, "rows affected")
	}
	if affected == 0 {
		return false, nil
	}

	if toolIds != nil {
		_, err = tx.ExecContext(ctx, `DELETE FROM agent_tools WHERE agent_id = ?`, agent.Id)
		if err != nil {
			return false, errors.WithMessage(err, "unlink tools")
		}
		err = r.linkTools(ctx, tx, agent.Id, toolIds)
		if err != nil {
			return false, errors.WithMessage(err, "link tools")
		}
	}

	err = tx.Commit()
	if err != nil {
		return false, errors.WithMessage(err, "commit tx")
	}
	return true, nil
}

func (r Agent) Delete(ctx context.Context, tenantId string, id int64) (bool, error) {
	result, err := r.cli.Conn().ExecContext(ctx,
		`DELETE FROM agents WHERE id = ? AND tenant_id = ?`,
		id, tenantId,
	)
	if err != nil {
		return false, errors.WithMessage(err, "delete agent")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, errors.WithMessage(err, "rows affected")
	}
	return affected > 0, nil
}

func (r Agent) linkTools(ctx context.Context, tx *sql.Tx, agentId int64, toolIds []int64) error {
	for _, toolId := range toolIds {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO agent_tools (agent_id, tool_id) VALUES (?, ?)`,
			agentId, toolId,
		)
		if err != nil {
			return errors.WithMessagef(err, "insert agent_tool %d", toolId)
		}
	}
	return nil
}
