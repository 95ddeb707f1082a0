package service

import (
	"agent-hub-service/conf"
	"agent-hub-service/domain"
)

// Tenant resolves api keys to tenant identities. The mapping is built once
// from config and never mutated, so lookups need no synchronization.
type Tenant struct {
	byApiKey map[string]domain.TenantIdentity
}

func NewTenant(tenants []conf.Tenant) Tenant {
	byApiKey := make(map[string]domain.TenantIdentity, len(tenants))
	for _, tenant := range tenants {
		byApiKey[tenant.ApiKey] = domain.TenantIdentity{
			Id:          tenant.Id,
			DisplayName: tenant.DisplayName,
		}
	}
	return Tenant{
		byApiKey: byApiKey,
	}
}

func (s Tenant) Resolve(apiKey string) (domain.TenantIdentity, error) {
	identity, ok := s.byApiKey[apiKey]
	if !ok {
		return domain.TenantIdentity{}, domain.ErrUnknownApiKey
	}
	return identity, nil
}
