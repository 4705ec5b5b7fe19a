package kvstore

import "context"

// Fixed keys used by the application. Each key holds one JSON snapshot
// that is overwritten whole on every write.
const (
	KeyCurrentOrder       = "currentOrder"
	KeyOrderHistory       = "orderHistory"
	KeyCurrentReservation = "currentReservation"
	KeyTheme              = "theme"
)

// Store is a flat string-keyed blob store. Callers read-modify-write
// entire snapshots; there is no partial update.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
