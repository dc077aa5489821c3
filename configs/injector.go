package configs

import (
	"sync"

	"github.com/codegangsta/inject"
)

var (
	injector     inject.Injector
	injectorOnce sync.Once
)

// GetInjector returns the process-wide injector used to wire the API
// handlers to the console and its clients.
func GetInjector() inject.Injector {
	injectorOnce.Do(func() {
		injector = inject.New()
	})
	return injector
}
