package template

import "sync"

var (
	defaultsMu     sync.RWMutex
	defaultLocator Locator
	defaultLoader  Loader
)

// SetDefaultLocator installs the locator copied into every new Resolver. Call
// it once during startup; existing resolvers are not affected.
func SetDefaultLocator(locator Locator) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLocator = locator
}

// SetDefaultLoader installs the loader copied into every new Resolver.
func SetDefaultLoader(loader Loader) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaultLoader = loader
}

// Defaults returns the current process defaults.
func Defaults() (Locator, Loader) {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaultLocator, defaultLoader
}
