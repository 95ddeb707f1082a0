package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"agent-hub-service/db"
	"agent-hub-service/domain"
	"agent-hub-service/entity"
	"agent-hub-service/repository"

	"github.com/stretchr/testify/require"
)

func openDb(t *testing.T) *db.Client {
	t.Helper()
	cli, err := db.Open(filepath.Join(t.TempDir(), "agents.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = cli.Close()
	})
	return cli
}

func TestAgentWithTools(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	cli := openDb(t)
	ctx := context.Background()

	toolRepo := repository.NewTool(cli)
	agentRepo := repository.NewAgent(cli)

	searchId, err := toolRepo.Insert(ctx, entity.Tool{TenantId: "tenant-1", Name: "Search", Description: "Searching tool"})
	require.NoError(err)
	calcId, err := toolRepo.Insert(ctx, entity.Tool{TenantId: "tenant-1", Name: "Calc", Description: "Calculator"})
	require.NoError(err)

	agentId, err := agentRepo.Insert(ctx, entity.Agent{
		TenantId: "tenant-1", Name: "Math Bot", Role: "Math", Description: "Does math",
	}, []int64{searchId, calcId})
	require.NoError(err)

	agent, err := agentRepo.Get(ctx, "tenant-1", agentId)
	require.NoError(err)
	require.EqualValues("Math Bot", agent.Name)

	tools, err := toolRepo.GetByAgent(ctx, agentId)
	require.NoError(err)
	require.Len(tools, 2)
	require.EqualValues("Search", tools[0].Name)

	// relink to a single tool
	updated, err := agentRepo.Update(ctx, entity.Agent{
		Id: agentId, TenantId: "tenant-1", Name: "Math Bot", Role: "Math", Description: "Does math",
	}, []int64{calcId})
	require.NoError(err)
	require.True(updated)

	tools, err = toolRepo.GetByAgent(ctx, agentId)
	require.NoError(err)
	require.Len(tools, 1)
	require.EqualValues("Calc", tools[0].Name)
}

func TestAgentTenantScoping(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	cli := openDb(t)
	ctx := context.Background()

	agentRepo := repository.NewAgent(cli)

	agentId, err := agentRepo.Insert(ctx, entity.Agent{TenantId: "tenant-1", Name: "Private"}, nil)
	require.NoError(err)

	_, err = agentRepo.Get(ctx, "tenant-2", agentId)
	require.ErrorIs(err, domain.ErrAgentNotFound)

	deleted, err := agentRepo.Delete(ctx, "tenant-2", agentId)
	require.NoError(err)
	require.False(deleted)

	agents, err := agentRepo.GetByTenant(ctx, "tenant-2")
	require.NoError(err)
	require.Empty(agents)

	agents, err = agentRepo.GetByTenant(ctx, "tenant-1")
	require.NoError(err)
	require.Len(agents, 1)
}

func TestExecutionPagination(t *testing.T) {
	t.Parallel()
	require := require.New(t)
	cli := openDb(t)
	ctx := context.Background()

	executionRepo := repository.NewExecution(cli)
	for i := 0; i < 5; i++ {
		_, err := executionRepo.Insert(ctx, entity.Execution{
			TenantId: "tenant-1", AgentId: 1, Prompt: "p", Model: "gpt-4o", Response: "r",
			CreatedAt: time.Now().UTC(),
		})
		require.NoError(err)
	}

	executions, err := executionRepo.GetByTenant(ctx, "tenant-1", 0, 3)
	require.NoError(err)
	require.Len(executions, 3)

	executions, err = executionRepo.GetByTenant(ctx, "tenant-1", 3, 3)
	require.NoError(err)
	require.Len(executions, 2)

	executions, err = executionRepo.GetByTenant(ctx, "tenant-2", 0, 10)
	require.NoError(err)
	require.Empty(executions)
}
