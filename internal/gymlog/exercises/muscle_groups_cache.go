package exercises

import (
	"encoding/json"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/gymlog/internal/telemetry/metrics"
)

const (
	muscleGroupsCacheKey  = "muscle-groups"
	muscleGroupsCacheName = "muscle_groups"
)

// MuscleGroupsCache keeps the encoded muscle group list, which changes rarely
// and is read on every exercise form.
type MuscleGroupsCache struct {
	cache          *freecache.Cache
	ttl            time.Duration
	metricsManager *metrics.Manager
}

func NewMuscleGroupsCache(sizeBytes int, ttl time.Duration, metricsManager *metrics.Manager) *MuscleGroupsCache {
	return &MuscleGroupsCache{
		cache:          freecache.NewCache(sizeBytes),
		ttl:            ttl,
		metricsManager: metricsManager,
	}
}

func (c *MuscleGroupsCache) Get() ([]MuscleGroup, bool) {
	raw, err := c.cache.Get([]byte(muscleGroupsCacheKey))
	if err != nil {
		c.observe("miss")
		return nil, false
	}

	var groups []MuscleGroup
	if err := json.Unmarshal(raw, &groups); err != nil {
		log.Warnf("muscle groups cache, unmarshal cached value: %s", err)
		c.observe("miss")
		return nil, false
	}

	c.observe("hit")
	return groups, true
}

func (c *MuscleGroupsCache) Set(groups []MuscleGroup) {
	raw, err := json.Marshal(groups)
	if err != nil {
		log.Errorf("muscle groups cache, marshal: %s", err)
		return
	}
	if err := c.cache.Set([]byte(muscleGroupsCacheKey), raw, int(c.ttl.Seconds())); err != nil {
		log.Warnf("muscle groups cache, set: %s", err)
	}
}

func (c *MuscleGroupsCache) Invalidate() {
	c.cache.Del([]byte(muscleGroupsCacheKey))
}

func (c *MuscleGroupsCache) observe(outcome string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterCacheLookups.WithLabelValues(muscleGroupsCacheName, outcome).Inc()
}
