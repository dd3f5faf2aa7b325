package decoration

import (
	"fmt"
	"strings"
)

// Property is one named diagnostics value.
type Property struct {
	Name  string
	Value string
}

func (p Property) String() string {
	return p.Name + ": " + p.Value
}

// DescribeProperties renders props one per line, indented by indent.
func DescribeProperties(props []Property, indent string) string {
	var sb strings.Builder
	for _, p := range props {
		fmt.Fprintf(&sb, "%s%s\n", indent, p)
	}
	return sb.String()
}

func stringProperty[T fmt.Stringer](name string, v T) Property {
	return Property{Name: name, Value: v.String()}
}

func listProperty[T fmt.Stringer](name string, items []T) Property {
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return Property{Name: name, Value: "[" + strings.Join(parts, ", ") + "]"}
}
