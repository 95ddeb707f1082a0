package domain

// TenantIdentity is resolved from an api key once per request and stays
// immutable for the process lifetime.
type TenantIdentity struct {
	Id          string
	DisplayName string
}
