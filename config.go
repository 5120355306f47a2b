package ssf

import "github.com/spf13/viper"

// cacheCapacityEnvKey is the viper key that overrides DefaultCacheCapacity
// for the package-level one-shot cache; through AutomaticEnv viper reads
// it from the upper-cased environment variable SSF_CACHE_CAPACITY,
// the same default-then-override pattern used throughout the rest of the
// pack for every subsystem's tunables.
const cacheCapacityEnvKey = "ssf_cache_capacity"

func init() {
	viper.SetDefault(cacheCapacityEnvKey, DefaultCacheCapacity)
	viper.AutomaticEnv()
}

func configuredCacheCapacity() int {
	n := viper.GetInt(cacheCapacityEnvKey)
	if n <= 0 {
		return DefaultCacheCapacity
	}
	return n
}
