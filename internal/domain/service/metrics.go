package service

// Metrics records domain-level counters. Implementations must be safe for concurrent use.
type Metrics interface {
	// BoundUpdated counts an update attempt by requested bound type and outcome code.
	BoundUpdated(boundType, outcome string)
	// ZoneLookup counts advisory zone lookups by whether a zone was found.
	ZoneLookup(found bool)
	// NearbySearch observes the number of restaurants returned by a discovery query.
	NearbySearch(results int)
	// ZoneCacheAccess counts zone cache hits and misses.
	ZoneCacheAccess(hit bool)
}
