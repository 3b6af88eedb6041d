package gauge

import (
	"sort"
	"strings"
)

// Style maps SVG presentation attributes to their values, e.g.
// "stroke" -> "cornflowerblue". A "class" key becomes the class attribute.
type Style map[string]string

// MergeStyles combines styles into a new Style. Later styles override
// earlier ones key by key; nil styles are skipped.
func MergeStyles(styles ...Style) Style {
	merged := Style{}
	for _, s := range styles {
		for k, v := range s {
			merged[k] = v
		}
	}
	return merged
}

// Attributes renders the style as space separated attributes in key
// order, so the same style always gives the same markup. Empty keys are
// dropped.
func (s Style) Attributes() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(`="`)
		b.WriteString(escape(s[k]))
		b.WriteByte('"')
	}
	return b.String()
}
