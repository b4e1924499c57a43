package cart

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/distribuidora-backend/internal/config"
)

// An unreachable Redis must surface as an error from the count, not as an
// empty cart.
func TestGetCartItemCountSurfacesLoadErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	s := NewService(nil, client, &config.Config{})

	count, err := s.GetCartItemCount(context.Background(), 7)
	assert.Error(t, err)
	assert.Zero(t, count)
}
