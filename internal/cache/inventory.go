package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%d"
	HootKeyPrefix = "hoot:%d"
	HootsListKey  = "hoots:all"
)

const (
	UserTTL = 5 * time.Minute
	HootTTL = 10 * time.Minute
	ListTTL = time.Minute
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func HootKey(hootID uint) string {
	return fmt.Sprintf(HootKeyPrefix, hootID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateHoot drops the cached hoot and the cached listing, since the
// listing embeds hoot documents.
func InvalidateHoot(ctx context.Context, hootID uint) {
	Invalidate(ctx, HootKey(hootID))
	Invalidate(ctx, HootsListKey)
}

func InvalidateHootsList(ctx context.Context) {
	Invalidate(ctx, HootsListKey)
}
