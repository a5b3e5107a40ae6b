package domain

import "fmt"

const redacted = "[REDACTED]"

// Secret holds a sensitive value. It never renders its content through fmt,
// JSON or text marshaling; Reveal must be called explicitly.
type Secret struct {
	value *string
}

func NewSecret(value string) Secret {
	return Secret{value: &value}
}

func (s Secret) Reveal() string {
	if s.value == nil {
		return ""
	}
	return *s.value
}

func (s Secret) IsZero() bool {
	return s.value == nil || *s.value == ""
}

// Clear overwrites the shared value so every copy of s observes the wipe.
func (s Secret) Clear() {
	if s.value != nil {
		*s.value = ""
	}
}

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}
