package domain

import "encoding/json"

// Settings is the durable flat map of boolean flags.
// Keys are tour keys plus the reserved ForceShowKey.
type Settings map[string]bool

// Seen reports whether the flag for key is set to true.
func (s Settings) Seen(key string) bool {
	return s[key]
}

// ForceShow reports whether the stored force override is set.
func (s Settings) ForceShow() bool {
	return s[ForceShowKey]
}

// Clone returns an independent copy.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// DecodeSettings parses the persisted settings object.
// It never fails: empty, malformed or non-object data yields an empty map,
// and entries whose values are not booleans are dropped.
func DecodeSettings(data []byte) Settings {
	if len(data) == 0 {
		return Settings{}
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Settings{}
	}
	out := make(Settings, len(raw))
	for k, v := range raw {
		if b, ok := v.(bool); ok {
			out[k] = b
		}
	}
	return out
}

// EncodeSettings serializes settings as a flat JSON object.
func EncodeSettings(s Settings) ([]byte, error) {
	if s == nil {
		s = Settings{}
	}
	return json.Marshal(map[string]bool(s))
}
