package schemadoc

import (
	"fmt"
	"strings"

	"github.com/smykla-labs/anvilcost/internal/config"
	pkgconfig "github.com/smykla-labs/anvilcost/pkg/config"
)

// SettingsReference renders one markdown section per settings group listing
// every key with its type, default, accepted values and description.
func SettingsReference() string {
	var sb strings.Builder

	sb.WriteString("# Settings reference\n\n")
	fmt.Fprintf(&sb, "Every key can be overridden with `%s<GROUP>_<KEY>`.\n", config.EnvPrefix)

	for _, group := range pkgconfig.Groups() {
		fmt.Fprintf(&sb, "\n## %s\n\n", group)

		table := NewTable("Key", "Type", "Default", "Accepted", "Description")

		for _, field := range pkgconfig.FieldsIn(group) {
			table.AddRow(
				"`"+field.Key+"`",
				string(field.Kind),
				fmt.Sprintf("`%v`", field.Default),
				accepted(field),
				strings.Join(field.Description, " "),
			)
		}

		sb.WriteString(table.String())
	}

	return sb.String()
}

func accepted(field pkgconfig.Field) string {
	switch {
	case len(field.Choices) > 0:
		return strings.Join(field.Choices, ", ")
	case field.HasRange():
		return config.FormatRange(field)
	case field.Kind == pkgconfig.KindBool:
		return "true, false"
	default:
		return ""
	}
}
