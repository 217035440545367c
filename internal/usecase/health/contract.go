package health

import "context"

// DBPinger checks preference store availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// CatalogChecker checks the equipment and user catalog.
type CatalogChecker interface {
	HealthCheck(ctx context.Context) error
}
