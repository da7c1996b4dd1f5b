package session

import "context"

// Identity is the authenticated principal attached to a session. A nil
// *Identity means signed out.
type Identity struct {
	UserID string
	Email  string
}

// Event types published on the session bus.
const (
	EventSignedIn       = "signed_in"
	EventSignedOut      = "signed_out"
	EventTokenRefreshed = "token_refreshed"
)

type Event struct {
	Type   string `json:"type"`
	UserID string `json:"user_id"`
}

// Bus carries session lifecycle events between the auth service and anyone
// who needs to react to identity changes.
type Bus interface {
	Publish(ctx context.Context, ev Event) error
	Subscribe(ctx context.Context) (<-chan Event, error)
}

// TokenStore tracks revoked tokens so a signed-out JWT stops working before
// it expires.
type TokenStore interface {
	Revoke(ctx context.Context, token string, ttlSeconds int64) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}
