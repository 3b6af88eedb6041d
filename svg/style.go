package svg

import (
	"strconv"
	"strings"
)

// splitStyle reads an inline style attribute such as
// "stroke:red; stroke-width:2".
func splitStyle(style string) map[string]string {
	properties := make(map[string]string)
	for _, declaration := range strings.Split(style, ";") {
		kv := strings.SplitN(declaration, ":", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		properties[key] = strings.TrimSpace(kv[1])
	}
	return properties
}

// parseLength reads a length such as "6" or "6px".
func parseLength(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"), 64)
	return n, err == nil
}

// paint builds the paint instruction closing an element. Inline style
// properties win over presentation attributes.
func paint(style, stroke, strokeWidth, fill string, scale float64) *DrawingInstruction {
	properties := splitStyle(style)
	if v, ok := properties["stroke"]; ok {
		stroke = v
	}
	if v, ok := properties["stroke-width"]; ok {
		strokeWidth = v
	}
	if v, ok := properties["fill"]; ok {
		fill = v
	}

	width := 1.0
	if w, ok := parseLength(strokeWidth); ok {
		width = w
	}
	width *= scale

	return &DrawingInstruction{
		Kind:        PaintInstruction,
		StrokeWidth: &width,
		Stroke:      &stroke,
		Fill:        &fill,
	}
}
