package svg

import (
	"fmt"
	"strconv"
	"strings"

	mt "github.com/rustyoz/Mtransform"
)

// parseTransform reads a transform attribute. Only translate and scale
// are understood, which is all gauge markup is ever wrapped in.
func parseTransform(s string) (mt.Transform, error) {
	t := mt.Identity()
	rest := strings.TrimSpace(s)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return t, fmt.Errorf("malformed transform %q", s)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := parseArguments(rest[open+1 : end])
		if err != nil {
			return t, fmt.Errorf("transform %q: %w", s, err)
		}
		rest = strings.TrimLeft(rest[end+1:], " ,")

		switch {
		case name == "translate" && len(args) == 1:
			t.Translate(args[0], 0)
		case name == "translate" && len(args) == 2:
			t.Translate(args[0], args[1])
		case name == "scale" && len(args) == 1:
			t.Scale(args[0], args[0])
		case name == "scale" && len(args) == 2:
			t.Scale(args[0], args[1])
		default:
			return t, fmt.Errorf("unsupported transform %s with %d arguments", name, len(args))
		}
	}
	return t, nil
}

func parseArguments(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		args = append(args, n)
	}
	return args, nil
}

// elementTransform combines the transform inherited from the group with
// the element's own transform attribute. Unreadable attributes are
// ignored.
func elementTransform(g *Group, own string) mt.Transform {
	t := mt.Identity()
	if g != nil && g.Transform != nil {
		t = mt.MultiplyTransforms(t, *g.Transform)
	}
	if own != "" {
		if et, err := parseTransform(own); err == nil {
			t = mt.MultiplyTransforms(t, et)
		}
	}
	return t
}

func ownerScale(g *Group) float64 {
	if g == nil || g.Owner == nil || g.Owner.scale == 0 {
		return 1
	}
	return g.Owner.scale
}
