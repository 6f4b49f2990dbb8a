package locale

import "strings"

const (
	Russian = "ru"
	English = "en"
	Kazakh  = "kk"
	Turkish = "tr"

	// Default is the language every fallback chain ends with.
	Default = Russian
)

// Supported lists the locales content is authored in, in a fixed order.
var Supported = []string{Russian, English, Kazakh, Turkish}

var aliases = map[string]string{
	"kz": Kazakh,
}

// Resolved is a canonical locale plus the ordered chain used to pick translations.
type Resolved struct {
	Normalized string   `json:"normalized"`
	Fallbacks  []string `json:"fallbacks"`
}

// Resolve normalizes a raw locale string. It never fails: unknown input
// degrades to the default locale.
func Resolve(raw string) Resolved {
	r, _ := Lookup(raw)
	return r
}

// Lookup is Resolve that also reports whether raw named a supported locale.
func Lookup(raw string) (Resolved, bool) {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	if idx := strings.IndexAny(candidate, "-_"); idx != -1 {
		candidate = candidate[:idx]
	}
	if alias, ok := aliases[candidate]; ok {
		candidate = alias
	}

	if !IsSupported(candidate) {
		return Resolved{Normalized: Default, Fallbacks: []string{Default}}, false
	}
	if candidate == Default {
		return Resolved{Normalized: candidate, Fallbacks: []string{candidate}}, true
	}
	return Resolved{Normalized: candidate, Fallbacks: []string{candidate, Default}}, true
}

func IsSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

// Others returns the supported locales that are not in the chain.
func (r Resolved) Others() []string {
	out := make([]string, 0, len(Supported))
	for _, s := range Supported {
		if !r.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

func (r Resolved) Has(code string) bool {
	for _, f := range r.Fallbacks {
		if f == code {
			return true
		}
	}
	return false
}
