package cache

import "sync"

// Cache keeps the last rendered document per target.
type Cache struct {
	values map[string][]byte
	mutex  sync.RWMutex
}

func New() *Cache {
	return &Cache{
		values: map[string][]byte{},
	}
}

func (c *Cache) Get(key string) ([]byte, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	value, ok := c.values[key]
	return value, ok
}

func (c *Cache) Set(key string, value []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.values[key] = value
}

func (c *Cache) Remove(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.values, key)
}
