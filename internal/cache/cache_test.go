package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetMissing(t *testing.T) {
	c := New()

	value, ok := c.Get("absent")

	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestSetAndGet(t *testing.T) {
	c := New()
	c.Set("stats", 42, time.Minute)

	value, ok := c.Get("stats")

	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestGetExpired(t *testing.T) {
	c := New()
	c.Set("stats", 42, -time.Second)

	value, ok := c.Get("stats")

	assert.False(t, ok)
	assert.Nil(t, value)

	// Expired entries are evicted on read.
	c.mutex.RLock()
	_, exists := c.items["stats"]
	c.mutex.RUnlock()
	assert.False(t, exists)
}

func TestDelete(t *testing.T) {
	c := New()
	c.Set("stats", 42, time.Minute)
	c.Delete("stats")

	_, ok := c.Get("stats")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	c := New()
	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)
	c.Clear()

	_, okA := c.Get("a")
	_, okB := c.Get("b")
	assert.False(t, okA)
	assert.False(t, okB)
}
