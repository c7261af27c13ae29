package service

import (
	"errors"
	"strings"
	"time"

	"insurance-leadgen-backend/internal/config"
	"insurance-leadgen-backend/internal/models"
	"insurance-leadgen-backend/pkg/cache"
)

// AnalyticsService pushes engagement events onto a capped Redis list. The
// queue is drained by an out-of-process consumer; this side only appends.
type AnalyticsService struct {
	cache *cache.Cache
	cfg   *config.Config
}

func NewAnalyticsService(cacheService *cache.Cache, cfg *config.Config) *AnalyticsService {
	return &AnalyticsService{cache: cacheService, cfg: cfg}
}

// Record enqueues one event. Events without a name are rejected; a
// disabled cache drops events silently since the queue has no other sink.
func (s *AnalyticsService) Record(event models.AnalyticsEvent) error {
	event.Name = strings.TrimSpace(event.Name)
	if event.Name == "" {
		return errors.New("event name is required")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	if s.cache == nil || !s.cache.Enabled() {
		return nil
	}
	return s.cache.PushToList(s.cfg.EventQueueKey, event, s.cfg.EventQueueMaxLen)
}

// QueueLength reports how many events are waiting for the consumer.
func (s *AnalyticsService) QueueLength() (int64, error) {
	if s.cache == nil || !s.cache.Enabled() {
		return 0, nil
	}
	return s.cache.ListLength(s.cfg.EventQueueKey)
}
