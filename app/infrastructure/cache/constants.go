package cache

const (
	// StateUserKey is the cache key template for state user lookups by lowercased address.
	StateUserKey = "state_user_%s"

	// MigrationLockName guards schema migration across replicas.
	MigrationLockName = "state_user_api:migration"
)
