package loader

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestLoadAll(t *testing.T) {
	enabled := &fakeFeature{name: "a", enabled: true}
	disabled := &fakeFeature{name: "b", enabled: false}

	mgr := NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	err := mgr.LoadAll(fiber.New())

	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded)
}

func TestLoadAll_Error(t *testing.T) {
	broken := &fakeFeature{name: "broken", enabled: true, loadErr: fmt.Errorf("boom")}

	mgr := NewManager()
	mgr.Register(broken)

	err := mgr.LoadAll(fiber.New())

	assert.ErrorContains(t, err, "load feature broken")
}
