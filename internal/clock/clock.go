package clock

import (
	"encoding/json"
	"sync"

	"nzcore/internal/errs"
)

// maxSafeInteger is the inclusive upper bound on the counter, matching the
// platform's maximum exactly-representable integer in the reference
// implementation (2^53-1), carried here as a sanity ceiling even though Go's
// int64 could go further.
const maxSafeInteger = 1<<53 - 1

// Version is stamped into the clock's serialized form.
const Version = "1.0"

// Clock is a monotonic integer counter with optional freeze-for-audit
// semantics. The zero value holds 0, which New never allows; construct with
// New, or restore a serialized clock with UnmarshalJSON.
type Clock struct {
	mu     sync.Mutex
	value  int64
	frozen bool
}

// snapshot is the JSON-serializable form of a Clock.
type snapshot struct {
	LogicalClock int64  `json:"logical_clock"`
	Version      string `json:"version"`
}

// New constructs a Clock starting at initial, which must be a positive
// integer.
func New(initial int64) (*Clock, error) {
	if initial < 1 {
		return nil, errs.Newf(errs.LogicalTimeViolation, "initial logical time %d is not positive", initial)
	}
	return &Clock{value: initial}, nil
}

// Tick increments the counter and returns the new value. It fails if the
// clock is frozen or would overflow the safe-integer bound.
func (c *Clock) Tick() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return 0, errs.New(errs.LogicalTimeViolation, "clock is frozen")
	}
	if c.value >= maxSafeInteger {
		return 0, errs.New(errs.LogicalTimeViolation, "logical clock overflow")
	}
	c.value++
	return c.value, nil
}

// Current returns the counter's current value without mutating it.
func (c *Clock) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Sync sets the counter to newValue, which must be strictly greater than
// the current value.
func (c *Clock) Sync(newValue int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if newValue <= c.value {
		return errs.Newf(errs.LogicalTimeViolation, "sync value %d is not strictly greater than current %d", newValue, c.value)
	}
	c.value = newValue
	return nil
}

// Freeze blocks subsequent Tick calls until Unfreeze.
func (c *Clock) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
}

// Unfreeze re-enables Tick.
func (c *Clock) Unfreeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = false
}

// MarshalJSON serializes the clock as {logical_clock, version}.
func (c *Clock) MarshalJSON() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Marshal(snapshot{LogicalClock: c.value, Version: Version})
}

// UnmarshalJSON restores a clock from its {logical_clock, version} form.
// The frozen flag is never persisted; a restored clock is always unfrozen.
func (c *Clock) UnmarshalJSON(data []byte) error {
	var s snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return errs.Newf(errs.ValidationFailed, "clock snapshot: %v", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = s.LogicalClock
	c.frozen = false
	return nil
}

// ValidateOrder reports whether next strictly follows prev.
func ValidateOrder(prev, next int64) bool { return next > prev }

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than b.
func Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
