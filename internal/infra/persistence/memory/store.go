// Package memory is an in-process implementation of the persistence layer backed by
// R-trees. It serves local development, demos and tests without PostGIS.
package memory

import (
	"context"
	"maps"
	"sync"

	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"

	"github.com/dhconnelly/rtreego"
	"github.com/google/uuid"
)

// Store owns every zone and restaurant record. Writers replace a whole record and its
// index entry under the write lock; readers hold the read lock.
type Store struct {
	mu sync.RWMutex

	zones       map[uuid.UUID]*entity.Zone
	zoneEntries map[uuid.UUID]*areaEntry
	zoneTree    *rtreego.Rtree

	restaurants map[uuid.UUID]*entity.Restaurant
	areaEntries map[uuid.UUID]*areaEntry
	areaTree    *rtreego.Rtree
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		zones:       make(map[uuid.UUID]*entity.Zone),
		zoneEntries: make(map[uuid.UUID]*areaEntry),
		zoneTree:    newTree(),
		restaurants: make(map[uuid.UUID]*entity.Restaurant),
		areaEntries: make(map[uuid.UUID]*areaEntry),
		areaTree:    newTree(),
	}
}

// NewZoneRepository returns a zone repository over s.
func NewZoneRepository(s *Store) repository.ZoneRepository {
	return &zoneRepository{store: s, lock: true}
}

// NewRestaurantRepository returns a restaurant repository over s.
func NewRestaurantRepository(s *Store) repository.RestaurantRepository {
	return &restaurantRepository{store: s, lock: true}
}

// NewTransactionManager returns a transaction manager that serializes transactions
// behind the store's write lock and restores the previous state on error.
func NewTransactionManager(s *Store) repository.TransactionManager {
	return &transactionManager{store: s}
}

func (s *Store) rlock(lock bool) func() {
	if !lock {
		return func() {}
	}
	s.mu.RLock()

	return s.mu.RUnlock
}

func (s *Store) wlock(lock bool) func() {
	if !lock {
		return func() {}
	}
	s.mu.Lock()

	return s.mu.Unlock
}

func (s *Store) putZone(zone *entity.Zone) {
	if old, ok := s.zoneEntries[zone.ID]; ok {
		s.zoneTree.Delete(old)
	}
	entry := newAreaEntry(zone.ID, zone.Polygon)
	s.zones[zone.ID] = zone
	s.zoneEntries[zone.ID] = entry
	s.zoneTree.Insert(entry)
}

// putRestaurant replaces a restaurant and its delivery area entry. A nil area
// removes the restaurant from the area tree.
func (s *Store) putRestaurant(restaurant *entity.Restaurant, area geometry.Ring) {
	if old, ok := s.areaEntries[restaurant.ID]; ok {
		s.areaTree.Delete(old)
		delete(s.areaEntries, restaurant.ID)
	}
	s.restaurants[restaurant.ID] = restaurant
	if len(area) == 0 {
		return
	}

	entry := newAreaEntry(restaurant.ID, area)
	s.areaEntries[restaurant.ID] = entry
	s.areaTree.Insert(entry)
}

type snapshot struct {
	zones       map[uuid.UUID]*entity.Zone
	restaurants map[uuid.UUID]*entity.Restaurant
	areas       map[uuid.UUID]*areaEntry
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		zones:       maps.Clone(s.zones),
		restaurants: maps.Clone(s.restaurants),
		areas:       maps.Clone(s.areaEntries),
	}
}

// restore rebuilds both trees from a snapshot. Records are immutable once stored,
// so shallow map copies are enough.
func (s *Store) restore(snap snapshot) {
	s.zones = make(map[uuid.UUID]*entity.Zone, len(snap.zones))
	s.zoneEntries = make(map[uuid.UUID]*areaEntry, len(snap.zones))
	s.zoneTree = newTree()
	for _, zone := range snap.zones {
		s.putZone(zone)
	}

	s.restaurants = snap.restaurants
	s.areaEntries = snap.areas
	s.areaTree = newTree()
	for _, entry := range snap.areas {
		s.areaTree.Insert(entry)
	}
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) NewZoneRepository() repository.ZoneRepository {
	return &zoneRepository{store: f.store}
}

func (f *repositoryFactory) NewRestaurantRepository() repository.RestaurantRepository {
	return &restaurantRepository{store: f.store}
}

// Execute holds the write lock for the whole of fn. Repositories handed to fn skip
// locking because the lock is already held.
func (tm *transactionManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	snap := tm.store.snapshot()
	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
