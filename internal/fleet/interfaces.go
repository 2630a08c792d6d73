package fleet

import "context"

// RepositoryInterface defines the contract for the read-only fleet feeds.
// Each call returns a complete snapshot of the underlying collection.
type RepositoryInterface interface {
	ListVehicles(ctx context.Context) ([]Vehicle, error)
	ListReservations(ctx context.Context) ([]Reservation, error)
	ListMaintenanceBlocks(ctx context.Context) ([]Reservation, error)
}
