// Package view holds the presentation side effects a screen can produce:
// notifications for the user and navigation to another screen. Handlers
// record them on a Collector so fetch and submit logic stays free of them.
package view

import (
	"context"
	"slices"
	"sync"
	"time"

	"gymroom/shared/metrics"
	"gymroom/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Notification struct {
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	At          time.Time `json:"at"`
}

// Collector records notifications and the navigation target for a single response.
type Collector struct {
	mu            sync.Mutex
	notifications []Notification
	navigate      string
	navigations   int
	metrics       *metrics.Metrics
}

func NewCollector(m *metrics.Metrics) *Collector {
	return &Collector{
		notifications: []Notification{},
		metrics:       m,
	}
}

func (c *Collector) Notify(_ context.Context, level Level, title, description string) {
	n := Notification{
		Level:       level,
		Title:       title,
		Description: description,
		At:          timezone.Now(),
	}

	c.mu.Lock()
	c.notifications = append(c.notifications, n)
	c.mu.Unlock()

	if c.metrics != nil {
		c.metrics.Notifications.WithLabelValues(string(level)).Inc()
	}

	event := log.Info()
	if level == LevelError {
		event = log.Warn()
	}

	event.Str("level", string(level)).Str("title", title).Msg(description)
}

func (c *Collector) Navigate(_ context.Context, path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.navigate = path
	c.navigations++
}

func (c *Collector) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.notifications)
}

// Destination returns the last navigation target, empty when none happened.
func (c *Collector) Destination() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.navigate
}

func (c *Collector) Navigations() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.navigations
}
