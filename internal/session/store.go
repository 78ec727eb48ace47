package session

import "context"

const (
	KeyToken    = "token"
	KeyUsername = "username"
)

// Store adalah session state per user yang dimiliki environment luar
// (di browser dulunya localStorage). Key yang tidak ada bukan error:
// Get mengembalikan string kosong.
type Store interface {
	Get(ctx context.Context, sessionID, key string) (string, error)
	Set(ctx context.Context, sessionID, key, value string) error
	Clear(ctx context.Context, sessionID string) error
}
