package helper

import (
	"context"
	"log"
	"sync"
	"time"

	"hotel_gateway/model"
	"hotel_gateway/session"
	"hotel_gateway/upstream"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

// RoomCache keeps the room listing warm so the landing page does not hit
// the upstream API on every view. Rooms are immutable per page view from
// the client's perspective, so a short TTL is enough.
type RoomCache struct {
	mu        sync.RWMutex
	rooms     []model.Room
	fetchedAt time.Time
	ttl       time.Duration
}

func NewRoomCache(ttl time.Duration) *RoomCache {
	return &RoomCache{ttl: ttl}
}

func (rc *RoomCache) Get() ([]model.Room, bool) {
	rc.mu.RLock()
	defer rc.mu.RUnlock()
	if rc.rooms == nil || time.Since(rc.fetchedAt) > rc.ttl {
		return nil, false
	}
	return rc.rooms, true
}

func (rc *RoomCache) Put(rooms []model.Room) {
	rc.mu.Lock()
	rc.rooms = rooms
	rc.fetchedAt = time.Now()
	rc.mu.Unlock()
}

// Sweep drops a stale listing so memory is not held between warms.
func (rc *RoomCache) Sweep() {
	rc.mu.Lock()
	if time.Since(rc.fetchedAt) > rc.ttl {
		rc.rooms = nil
	}
	rc.mu.Unlock()
}

var (
	roomScheduler gocron.Scheduler
	sweeper       *cron.Cron
)

// StartRoomCacheScheduler warms the room listing immediately and then
// every five minutes.
func StartRoomCacheScheduler(api *upstream.Client, cache *RoomCache) {
	warm := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		rooms, err := api.ListRooms(ctx)
		if err != nil {
			log.Printf("room cache: warm failed: %v", err)
			return
		}
		cache.Put(rooms)
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}
	roomScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(5*time.Minute),
		gocron.NewTask(warm),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Room cache scheduler started (every 5 minutes)")
}

func StopRoomCacheScheduler() {
	if roomScheduler != nil {
		_ = roomScheduler.Shutdown()
	}
}

// StartCacheSweeper prunes expired in-memory entries (room listing plus
// the session store's cache tier) every five minutes.
func StartCacheSweeper(cache *RoomCache, store *session.Store) {
	sweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := sweeper.AddFunc("*/5 * * * *", func() {
		cache.Sweep()
		store.Sweep()
	})
	if err != nil {
		log.Printf("cache sweeper: init failed: %v", err)
		return
	}

	sweeper.Start()
	log.Println("Cache sweeper started (every 5 minutes)")
}

func StopCacheSweeper() {
	if sweeper != nil {
		sweeper.Stop()
	}
}
