package cascade

import "encoding/json"

// Value is an optional cell string. The zero Value is absent.
type Value struct {
	s  string
	ok bool
}

// Some returns a present Value holding s, even when s is empty.
func Some(s string) Value {
	return Value{s: s, ok: true}
}

// Cell converts a raw spreadsheet cell to a Value. Empty cells are absent.
func Cell(s string) Value {
	if s == "" {
		return Value{}
	}
	return Some(s)
}

// Get returns the string and whether it is present.
func (v Value) Get() (string, bool) {
	return v.s, v.ok
}

// Valid reports whether the value is present.
func (v Value) Valid() bool {
	return v.ok
}

// String returns the value, or "" when absent.
func (v Value) String() string {
	return v.s
}

// MarshalJSON encodes an absent Value as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.ok {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

// MarshalYAML encodes an absent Value as null.
func (v Value) MarshalYAML() (any, error) {
	if !v.ok {
		return nil, nil
	}
	return v.s, nil
}

// IsZero reports whether the value is absent.
func (v Value) IsZero() bool {
	return !v.ok
}
