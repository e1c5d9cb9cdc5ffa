package models

import "math"

// RequestBody is a decoded JSON request object. Values keep the dynamic JSON
// types (string, float64, bool, nil, []any, map[string]any) so that type rules
// can be checked before the body is converted into domain models.
type RequestBody map[string]any

// Has reports whether key is present with a non-null value.
func (b RequestBody) Has(key string) bool {
	v, ok := b[key]
	return ok && v != nil
}

// Get returns the raw value stored under key or nil.
func (b RequestBody) Get(key string) any {
	if b == nil {
		return nil
	}
	return b[key]
}

// String returns the string stored under key or an empty string when the key is
// absent or holds a value of another type.
func (b RequestBody) String(key string) string {
	s, _ := b.Get(key).(string)
	return s
}

// StringPtr returns a pointer to the string stored under key, or nil when the
// key is absent or not a string. Used for partial updates.
func (b RequestBody) StringPtr(key string) *string {
	s, ok := b.Get(key).(string)
	if !ok {
		return nil
	}
	return &s
}

// Int64 returns the integral number stored under key. It returns 0 when the key
// is absent, not a number or not integral.
func (b RequestBody) Int64(key string) int64 {
	f, ok := b.Get(key).(float64)
	if !ok || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
