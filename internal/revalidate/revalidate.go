package revalidate

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// View tags the web frontend caches under. Mutating handlers signal these so
// the frontend can drop the matching pages.
const (
	ViewAdminTestDrives = "admin-test-drives"
	ViewReservations    = "reservations"
	ViewSavedCars       = "saved-cars"
	ViewCarDetail       = "car-detail"
)

// CarDetail tags a single car's detail view.
func CarDetail(carID string) string {
	return ViewCarDetail + ":" + carID
}

// Revalidator signals view invalidation after a mutation.
type Revalidator interface {
	Revalidate(ctx context.Context, views ...string) error
}

// Redis drops cached view payloads and publishes the tags on a channel for
// subscribed frontends.
type Redis struct {
	client  *redis.Client
	channel string
}

func NewRedis(client *redis.Client, channel string) *Redis {
	return &Redis{client: client, channel: channel}
}

func (r *Redis) Revalidate(ctx context.Context, views ...string) error {
	if len(views) == 0 {
		return nil
	}
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = "view:" + v
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, keys...)
	for _, v := range views {
		pipe.Publish(ctx, r.channel, v)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// Noop satisfies Revalidator when no cache layer is configured.
type Noop struct{}

func (Noop) Revalidate(context.Context, ...string) error { return nil }
