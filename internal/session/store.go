package session

import (
	"context"
	"time"
)

// Store tracks revoked session ids so a logged-out token stops working
// before its signature expires. Entries only need to live until the token
// would have expired anyway, hence the ttl on Revoke.
type Store interface {
	Revoke(ctx context.Context, sessionID string, ttl time.Duration) error
	Revoked(ctx context.Context, sessionID string) (bool, error)
}
