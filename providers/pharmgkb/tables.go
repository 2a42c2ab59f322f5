package pharmgkb

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row ist eine Tabellenzeile, adressiert über die Spaltennamen der Kopfzeile.
// Fehlende Spalten liefern den leeren String.
type Row map[string]string

// LoadTSV liest eine tab-separierte PharmGKB-Tabelle ein. Die Felder werden
// bewusst ohne Quote-Verarbeitung übernommen: PharmGKB nutzt Anführungszeichen
// innerhalb von Feldwerten (z.B. in Trade Names), die der Listen-Formatter
// später selbst interpretiert.
func LoadTSV(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("tabelle %s ist leer", path)
	}
	header := strings.Split(scanner.Text(), "\t")

	var rows []Row
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, scanner.Err()
}

// LoadCSVPairs liest eine zweispaltige Konvertierungstabelle (CSV mit
// Kopfzeile) als Mapping von der ersten auf die zweite Spalte ein.
func LoadCSVPairs(path string) (map[string]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("konvertierungstabelle %s ist leer", path)
	}

	pairs := make(map[string]string, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 || record[0] == "" {
			continue
		}
		pairs[record[0]] = record[1]
	}
	return pairs, nil
}
