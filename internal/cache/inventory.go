package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix = "user:%s"
	FeedKeyPrefix = "feed:%s:%d"
)

const (
	UserTTL = 5 * time.Minute
	FeedTTL = 30 * time.Second
)

func UserKey(userID string) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func FeedKey(userID string, page int) string {
	return fmt.Sprintf(FeedKeyPrefix, userID, page)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}
