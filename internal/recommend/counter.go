package recommend

// OrderedCounter is a string frequency map that remembers the order in
// which keys were first seen. Popularity tie-breaking depends on that
// order, so plain map iteration is not enough.
type OrderedCounter struct {
	keys   []string
	counts map[string]int
}

func NewOrderedCounter() *OrderedCounter {
	return &OrderedCounter{counts: make(map[string]int)}
}

func (c *OrderedCounter) Inc(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *OrderedCounter) Count(key string) int {
	return c.counts[key]
}

func (c *OrderedCounter) Len() int {
	return len(c.keys)
}

// CountEntry is a key with its accumulated count.
type CountEntry struct {
	Key   string
	Count int
}

// Entries returns the counter contents in first-seen key order.
func (c *OrderedCounter) Entries() []CountEntry {
	entries := make([]CountEntry, 0, len(c.keys))
	for _, k := range c.keys {
		entries = append(entries, CountEntry{Key: k, Count: c.counts[k]})
	}
	return entries
}
