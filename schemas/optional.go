package schemas

import "bytes"

// Optional holds a payload slot that the vendor may leave empty. The vendor
// writes an absent object as the literal {} rather than null, so both {} and
// null decode to an absent value. Any other payload must match T exactly;
// a malformed payload is a decode error, never an absent value.
//
// The {} sentinel cannot be told apart from a present T that legitimately
// has no fields. For such T a present-but-empty payload decodes as absent.
type Optional[T any] struct {
	value T
	valid bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.valid
}

// IsPresent reports whether the slot held a value.
func (o Optional[T]) IsPresent() bool {
	return o.valid
}

// OrElse returns the value if present and fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.valid {
		return o.value
	}
	return fallback
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	var zero T
	o.value, o.valid = zero, false

	if isAbsent(data) {
		return nil
	}
	if err := DecodeStrict(data, &o.value); err != nil {
		o.value = zero
		return err
	}
	o.valid = true
	return nil
}

// MarshalJSON implements json.Marshaler. An absent value encodes as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.valid {
		return []byte("null"), nil
	}
	return strictAPI.Marshal(o.value)
}

func (Optional[T]) optionalSlot() {}

// isAbsent reports whether data is null or an object with no members.
func isAbsent(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	if len(trimmed) < 2 || trimmed[0] != '{' || trimmed[len(trimmed)-1] != '}' {
		return false
	}
	return len(bytes.TrimSpace(trimmed[1:len(trimmed)-1])) == 0
}
