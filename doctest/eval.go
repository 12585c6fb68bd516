package doctest

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// FormatValue renders a value the way documentation examples are expected
// to spell it: bare numbers and booleans, quoted strings, bracketed
// collections, and "{key = value}" for objects and maps.
func FormatValue(v cty.Value) string {
	if v.IsNull() {
		return "null"
	}
	ty := v.Type()
	switch {
	case ty == cty.Number:
		return formatNumber(v)
	case ty == cty.String:
		return fmt.Sprintf("%q", v.AsString())
	case ty == cty.Bool:
		if v.True() {
			return "true"
		}
		return "false"
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			parts = append(parts, FormatValue(ev))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case ty.IsObjectType() || ty.IsMapType():
		var parts []string
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			parts = append(parts, fmt.Sprintf("%s = %s", k.AsString(), FormatValue(ev)))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return v.GoString()
}

func formatNumber(v cty.Value) string {
	bf := v.AsBigFloat()
	if bf.IsInf() {
		if bf.Signbit() {
			return "-inf"
		}
		return "inf"
	}
	return bf.Text('g', -1)
}
