// Package constants holds string identifiers shared by config, wiring and handlers.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Persistence drivers.
const (
	PersistenceDriverPostgres = "postgres"
	PersistenceDriverMemory   = "memory"
)

// Roles carried in access tokens.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
)
