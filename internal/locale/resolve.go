package locale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// Text maps a language code to a single string (a name, a prompt, an answer).
type Text map[Language]string

// Options maps a language code to an ordered list of answer choices.
type Options map[Language][]string

// ResolveText returns t[lang] when non-empty, then t[Default], then "".
func ResolveText(t Text, lang Language) string {
	if v := t[lang]; v != "" {
		return v
	}
	return t[Default]
}

// ResolveOptions returns o[lang] when non-empty, then o[Default], then an
// empty (non-nil) slice.
func ResolveOptions(o Options, lang Language) []string {
	if v := o[lang]; len(v) > 0 {
		return v
	}
	if v := o[Default]; len(v) > 0 {
		return v
	}
	return []string{}
}

// Languages lists the supported keys that carry a non-empty value, in
// allow-list order.
func (t Text) Languages() []Language {
	var out []Language
	for _, l := range supported {
		if t[l] != "" {
			out = append(out, l)
		}
	}
	return out
}

// DropUnsupported removes keys outside the allow-list and returns them.
func (t Text) DropUnsupported() []Language {
	var dropped []Language
	for l := range t {
		if !supportedSet[l] {
			dropped = append(dropped, l)
			delete(t, l)
		}
	}
	sort.Slice(dropped, func(i, j int) bool { return dropped[i] < dropped[j] })
	return dropped
}

// DropUnsupported removes keys outside the allow-list and returns them.
func (o Options) DropUnsupported() []Language {
	var dropped []Language
	for l := range o {
		if !supportedSet[l] {
			dropped = append(dropped, l)
			delete(o, l)
		}
	}
	sort.Slice(dropped, func(i, j int) bool { return dropped[i] < dropped[j] })
	return dropped
}

func (t Text) Value() (driver.Value, error) {
	if t == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(t)
}

func (t *Text) Scan(src interface{}) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	m := Text{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return fmt.Errorf("scan localized text: %w", err)
		}
	}
	*t = m
	return nil
}

func (o Options) Value() (driver.Value, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(o)
}

func (o *Options) Scan(src interface{}) error {
	b, err := jsonBytes(src)
	if err != nil {
		return err
	}
	m := Options{}
	if len(b) > 0 {
		if err := json.Unmarshal(b, &m); err != nil {
			return fmt.Errorf("scan localized options: %w", err)
		}
	}
	*o = m
	return nil
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSONB source type %T", src)
	}
}
