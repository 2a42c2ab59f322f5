package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// drugTypes sind die Typ-Labels, die als Drug (statt ChemicalCompound) zählen.
var drugTypes = map[string]bool{
	"Drug":       true,
	"Drug Class": true,
	"Prodrug":    true,
}

// FormatTextList formatiert eine komma-separierte Liste in das MCF-Format
// quotierter, komma-separierter Werte. Einzelne Elemente können bereits in
// Anführungszeichen stehen und dürfen darin Kommas enthalten; die Tokenisierung
// richtet sich deshalb nach der Anzahl der Anführungszeichen pro Rohtoken
// (0 = ganzes Element oder Fortsetzung, 1 = Anfang bzw. Ende eines quotierten
// Elements, 2 = komplettes quotiertes Element). Fehlerhafte Tokenmuster werden
// geloggt und verworfen.
func FormatTextList(log *zap.Logger, textList string) string {
	if textList == "" {
		return ""
	}
	formatted := ""
	joining := ""
	for _, propValue := range strings.Split(textList, ",") {
		quotes := strings.Count(propValue, `"`)
		switch {
		case quotes == 0 && joining != "":
			joining += propValue + ","
		case quotes == 0 || quotes == 2:
			formatted += `"` + strings.TrimSpace(strings.ReplaceAll(propValue, `"`, "")) + `",`
		case quotes == 1 && joining != "":
			formatted += strings.TrimSpace(joining) + strings.ReplaceAll(propValue, `"`, "") + `",`
			joining = ""
		case quotes == 1:
			joining = propValue + ","
		default:
			log.Warn("Unerwartetes Listenformat, Token wird verworfen", zap.String("value", textList))
		}
	}
	return strings.Trim(formatted, ",")
}

// FormatSemicolonList formatiert eine semikolon-separierte Liste (z.B. die
// PMIDs-Spalte) in das MCF-Format quotierter, komma-separierter Werte.
func FormatSemicolonList(semiList string) string {
	if semiList == "" {
		return ""
	}
	parts := strings.Split(semiList, ";")
	quoted := make([]string, 0, len(parts))
	for _, propValue := range parts {
		quoted = append(quoted, `"`+propValue+`"`)
	}
	return strings.Join(quoted, ",")
}

// FormatBool gibt "True" zurück, wenn der Rohwert exakt dem Sentinel
// entspricht, sonst den leeren String. Das Fehlen des Sentinels ist kein
// Beleg für "False", sondern nur "nicht behauptet" - deshalb gibt es keinen
// False-Wert.
func FormatBool(text, trueVal string) string {
	if text == trueVal {
		return "True"
	}
	return ""
}

// GetEnum übersetzt eine komma-separierte Liste von Enum-Codes in eine
// komma-separierte Liste von dcid-qualifizierten Enum-IDs. Ein unbekannter
// Code ist eine Datenintegritätsverletzung und schlägt das ganze Feld fehl.
func GetEnum(keyList string, enums map[string]string) (string, error) {
	if keyList == "" {
		return "", nil
	}
	var formatted []string
	for _, key := range strings.Split(keyList, ",") {
		dcid, ok := enums[key]
		if !ok {
			return "", fmt.Errorf("unbekannter enum-code %q", key)
		}
		formatted = append(formatted, "dcid:"+dcid)
	}
	return strings.Join(formatted, ","), nil
}

// FormatXrefs übersetzt eine komma-separierte Liste von "Quelle:Wert"-Paaren
// in einen mehrzeiligen MCF-Property-Block. Der Wert darf selbst Doppelpunkte
// enthalten und wird nach dem ersten Doppelpunkt wieder zusammengesetzt.
// Unbekannte Quellennamen werden geloggt und übersprungen.
func FormatXrefs(log *zap.Logger, xrefs string, props map[string]string) string {
	if xrefs == "" {
		return ""
	}
	var out strings.Builder
	for _, xref := range strings.Split(xrefs, ",") {
		pair := strings.Split(strings.TrimSpace(strings.ReplaceAll(xref, `"`, "")), ":")
		label, ok := props[pair[0]]
		if !ok {
			log.Warn("Unbekannte Cross-Reference-Quelle, wird übersprungen",
				zap.String("source", pair[0]))
			continue
		}
		value := strings.TrimSpace(strings.Join(pair[1:], ":"))
		out.WriteString(label + `: "` + value + `"` + "\n")
	}
	return out.String()
}

// CompoundType leitet den typeOf-Wert eines Compounds aus der Typliste ab.
// Nur Drug-Subtypen ergeben dcs:Drug, nur Nicht-Drug-Typen ergeben
// dcs:ChemicalCompound, eine Mischung ergibt beide Marker in fester
// Reihenfolge.
func CompoundType(compoundTypes string) string {
	types := map[string]bool{}
	for _, compoundType := range strings.Split(compoundTypes, ",") {
		compoundType = strings.TrimSpace(strings.ReplaceAll(compoundType, `"`, ""))
		if drugTypes[compoundType] {
			types["dcs:Drug"] = true
		} else {
			types["dcs:ChemicalCompound"] = true
		}
	}
	if len(types) == 2 {
		return "dcs:ChemicalCompound,dcs:Drug"
	}
	for t := range types {
		return t
	}
	return ""
}
