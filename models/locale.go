package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
)

// Supported display locales. French is the canonical content language;
// records are expected to carry at least the fr key.
const (
	LocaleFR = "fr"
	LocaleAR = "ar"
	LocaleEN = "en"
)

// fallbackOrder fixes the scan order for "first non-empty value" so that
// resolution is deterministic regardless of map iteration.
var fallbackOrder = []string{LocaleFR, LocaleEN, LocaleAR}

// LocalizedText maps a locale code to the translated value of one field,
// e.g. {"fr": "Couscous", "ar": "كسكس", "en": "Couscous"}.
// Stored as JSONB.
type LocalizedText map[string]string

// Resolve returns the value for the requested locale, falling back to
// French, then to the first non-empty value, then to "". Missing keys and
// nil maps are normal cases, not errors; a translatable field must never
// surface as null.
func (t LocalizedText) Resolve(locale string) string {
	if len(t) == 0 {
		return ""
	}
	if v := t[locale]; v != "" {
		return v
	}
	if v := t[LocaleFR]; v != "" {
		return v
	}
	for _, l := range fallbackOrder {
		if v := t[l]; v != "" {
			return v
		}
	}
	return ""
}

// IsEmpty reports whether no locale carries a non-empty value.
func (t LocalizedText) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

func (t *LocalizedText) Scan(value interface{}) error {
	if value == nil {
		*t = make(LocalizedText)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan LocalizedText")
	}
	return json.Unmarshal(bytes, t)
}

func (t LocalizedText) Value() (driver.Value, error) {
	if t == nil {
		return json.Marshal(LocalizedText{})
	}
	return json.Marshal(t)
}

// StringList is a JSONB-backed []string (image URL lists and the like).
type StringList = datatypes.JSONSlice[string]
