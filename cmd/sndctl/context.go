// ABOUTME: Shared command state: lazily loaded config and selector.
// ABOUTME: Everything is built fresh per invocation; nothing persists.

package main

import (
	"strings"
	"sync"

	"github.com/sndctl/sndctl/internal/audiosys"
	"github.com/sndctl/sndctl/internal/config"
	"github.com/sndctl/sndctl/internal/device"
	"github.com/sndctl/sndctl/internal/format"
	"github.com/sndctl/sndctl/internal/selector"
)

type commandContext struct {
	configFlag  *string
	formatFlag  *string
	verboseFlag *bool

	once sync.Once
	cfg  *config.Config
	sel  *selector.Selector
}

func newCommandContext(configFlag, formatFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		formatFlag:  formatFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) ensure() {
	c.once.Do(func() {
		c.cfg = config.Load(strings.TrimSpace(*c.configFlag))
		c.sel = selector.New(audiosys.NewPulseBackend(), c.cfg.Rules())
	})
}

func (c *commandContext) selector() *selector.Selector {
	c.ensure()
	return c.sel
}

func (c *commandContext) configValue() *config.Config {
	c.ensure()
	return c.cfg
}

func (c *commandContext) outputFormat() (format.Format, error) {
	return format.Parse(strings.TrimSpace(*c.formatFlag))
}

// expandDirections turns a requested direction into the concrete directions
// an apply operation touches. Any fans out to all three.
func expandDirections(dir device.Direction) []device.Direction {
	if dir == device.Any {
		return []device.Direction{device.Input, device.Output, device.System}
	}
	return []device.Direction{dir}
}
