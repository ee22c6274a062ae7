// Package casing converts between the naming conventions of the library
// model and generated Rust.
package casing

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case.
// Acronyms stay together: "IOChannel" -> "io_channel".
func ToSnakeCase(s string) string {
	var result strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			// Inside an acronym only its last letter starts a new word
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// TraitName is the extension trait carrying a type's methods: "WidgetExt".
func TraitName(typeName string) string {
	return typeName + "Ext"
}
