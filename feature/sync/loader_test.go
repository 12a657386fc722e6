package sync

import (
	"testing"
	"time"

	"event-sync/core/reconcile"
	"event-sync/core/reconcile/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	engine := reconcile.NewEngine(new(mocks.DatabaseSource), new(mocks.CalendarSource), 24*time.Hour, zap.NewNop())
	feature := NewFeature(engine, zap.NewNop())

	assert.Equal(t, "sync", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	err := feature.Load(app)
	assert.NoError(t, err)
}
