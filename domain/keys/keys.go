package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check cache key
	PfxHealthCheck = "healthcheck"
	// PfxMarketplace is used for prefixing marketplace existence memo keys
	PfxMarketplace = "marketplace"
	// PfxCoinPrice is used for prefixing coin price cache keys
	PfxCoinPrice = "coinPrice"
)

// CustomKey is used to join the customized key by components with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// CacheKey is used to join the cache key by components
func CacheKey(components ...string) string {
	return CustomKey(":", components...)
}
