package values

// Entry is a single key/value pair of a Configuration.
type Entry struct {
	Key   string
	Value Value
}

// Configuration is a mapping from keys to values that remembers insertion
// order. Setting an existing key replaces the value in place.
type Configuration struct {
	entries []Entry
	index   map[string]int
}

// New returns an empty Configuration.
func New() *Configuration {
	return &Configuration{index: make(map[string]int)}
}

// FromEntries builds a Configuration from the given pairs, in order.
func FromEntries(entries ...Entry) (*Configuration, error) {
	cfg := New()
	for _, e := range entries {
		if err := cfg.Set(e.Key, e.Value); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Set stores value under key.
func (c *Configuration) Set(key string, value Value) error {
	if key == "" {
		return ErrEmptyKey
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}
	if value == nil {
		value = Unsupported{Type: "null"}
	}
	if i, ok := c.index[key]; ok {
		c.entries[i].Value = value
		return nil
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Key: key, Value: value})
	return nil
}

// SetAny converts value with FromAny and stores it under key.
func (c *Configuration) SetAny(key string, value any) error {
	return c.Set(key, FromAny(value))
}

// Get returns the value stored under key.
func (c *Configuration) Get(key string) (Value, bool) {
	if c == nil {
		return nil, false
	}
	i, ok := c.index[key]
	if !ok {
		return nil, false
	}
	return c.entries[i].Value, true
}

// Len reports the number of entries.
func (c *Configuration) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the entries in insertion order.
func (c *Configuration) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the keys in insertion order.
func (c *Configuration) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}
