package render

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cmddoc/internal/commands"
)

// TypeLabel returns a readable name for an option kind, e.g. "Sub Command".
func TypeLabel(kind commands.Kind) string {
	name := strings.ReplaceAll(strings.ToLower(kind.String()), "_", " ")
	return cases.Title(language.Und).String(name)
}

func choiceList(opt commands.Option) string {
	scalar, ok := opt.(*commands.Scalar)
	if !ok || len(scalar.Choices) == 0 {
		return ""
	}
	parts := make([]string, 0, len(scalar.Choices))
	for _, choice := range scalar.Choices {
		parts = append(parts, fmt.Sprintf("%s (%v)", choice.Name, choice.Value))
	}
	return strings.Join(parts, ", ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
