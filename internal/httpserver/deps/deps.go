package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hblboard/hblboard/internal/credential"
	"github.com/hblboard/hblboard/internal/index"
	"github.com/hblboard/hblboard/internal/logger"
	"github.com/hblboard/hblboard/internal/scheduler"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	AllowedHosts []string // Host headers allowed to access the server
	AllowedCIDRS []string // IPs allowed to access ops endpoints
	TrustProxy   bool     // true if running behind a trusted reverse proxy

	RedisClient *redis.Client        // credential persistence
	FeedIndex   *index.FeedIndex     // currently visible snapshot
	Credentials *credential.Provider // explicit credential capability
	Refresher   *scheduler.FeedRefresher

	RefreshTrigger chan struct{} // channel to trigger a manual feed refresh

	AuthRateBurst  int // token bucket capacity for the auth endpoints
	AuthRatePerMin int // refill per IP per minute for the auth endpoints
}
