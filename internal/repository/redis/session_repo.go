package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	sessionTokenPrefix = "session:user:token"
	sessionTokenTTL    = 7 * 24 * time.Hour
)

// SessionRepository records the token issued to each signed-in user.
type SessionRepository struct{}

func key(userID string) string {
	return fmt.Sprintf("%s:%s", sessionTokenPrefix, userID)
}

func (r *SessionRepository) Save(ctx context.Context, userID, token string) error {
	return Client.Set(ctx, key(userID), token, sessionTokenTTL).Err()
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return Client.Del(ctx, key(userID)).Err()
}
