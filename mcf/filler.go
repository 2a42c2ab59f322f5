package mcf

import (
	"fmt"
	"regexp"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{([a-z_][a-z0-9_]*)\}`)

// Filler füllt MCF-Templates mit benannten Platzhaltern der Form {name}.
// Zeilen, deren Platzhalter keinen Wert bekommen haben, werden komplett
// verworfen; fehlende Pflicht-Platzhalter sind ein harter Fehler.
type Filler struct {
	template     string
	requiredVars []string
}

// NewFiller erstellt einen Filler für das gegebene Template.
func NewFiller(template string, requiredVars []string) *Filler {
	return &Filler{template: template, requiredVars: requiredVars}
}

// Fill ersetzt alle Platzhalter durch die gegebenen Werte und gibt den
// fertigen Knoten-Block zurück. Leere Werte zählen als nicht gesetzt.
func (f *Filler) Fill(values map[string]string) (string, error) {
	for _, name := range f.requiredVars {
		if values[name] == "" {
			return "", fmt.Errorf("pflicht-platzhalter %q hat keinen wert", name)
		}
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.Trim(f.template, "\n"), "\n") {
		names := placeholderRegex.FindAllStringSubmatch(line, -1)
		missing := false
		for _, match := range names {
			if values[match[1]] == "" {
				missing = true
				break
			}
		}
		if missing {
			continue
		}
		filled := placeholderRegex.ReplaceAllStringFunc(line, func(ph string) string {
			return values[strings.Trim(ph, "{}")]
		})
		out.WriteString(filled)
		out.WriteString("\n")
	}
	return out.String(), nil
}
