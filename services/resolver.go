package services

import (
	"fmt"

	"pharm-graph/config"
	"pharm-graph/models"
	"pharm-graph/providers/pharmgkb"
)

// ConversionMaps hält die Identifier-Konvertierungstabellen für die
// ChEMBL-Auflösung. Alle Maps sind nach dem Laden unveränderlich.
type ConversionMaps struct {
	PharmToChembl   map[string]string
	PubchemToChembl map[string]string
	InchiToKey      map[string]string
	KeyToChembl     map[string]string
}

// LoadConversionMaps liest die Konvertierungstabellen aus dem
// Conversion-Verzeichnis ein.
func LoadConversionMaps(cfg *config.Config) (*ConversionMaps, error) {
	files := []struct {
		name string
		dest *map[string]string
	}{
		{"pharm_id_to_chembl.csv", nil},
		{"pubchem_id_to_chembl.csv", nil},
		{"inchi_to_inchi_key.csv", nil},
		{"inchi_key_to_chembl.csv", nil},
	}

	maps := &ConversionMaps{}
	files[0].dest = &maps.PharmToChembl
	files[1].dest = &maps.PubchemToChembl
	files[2].dest = &maps.InchiToKey
	files[3].dest = &maps.KeyToChembl

	for _, file := range files {
		pairs, err := pharmgkb.LoadCSVPairs(cfg.ConversionFile(file.name))
		if err != nil {
			return nil, fmt.Errorf("laden von %s fehlgeschlagen: %w", file.name, err)
		}
		*file.dest = pairs
	}
	return maps, nil
}

// MergeChembls gibt aus drei ChEMBL-Kandidaten die erste nicht-leere ID
// zurück. Die Priorität ist: PharmGKB-basiert, dann PubChem-basiert, dann
// InChI-basiert. Fehlende Zuordnungen sind kein Fehler, sie fallen einfach
// zur nächsten Stufe durch.
func MergeChembls(chembl1, chembl2, chembl3 string) string {
	if chembl1 != "" {
		return chembl1
	}
	if chembl2 != "" {
		return chembl2
	}
	return chembl3
}

// Resolve setzt InChIKey und ChemblID auf dem Drug-Modell. Danach gilt der
// Eintrag als vollständig konstruiert.
func (m *ConversionMaps) Resolve(drug *models.Drug) {
	drug.InChIKey = m.InchiToKey[drug.InChI]

	chembl1 := m.PharmToChembl[drug.PharmGKBID]
	chembl2 := m.PubchemToChembl[drug.PubChemCompoundIDs]
	chembl3 := m.KeyToChembl[drug.InChIKey]
	drug.ChemblID = MergeChembls(chembl1, chembl2, chembl3)
}

// DrugDcid gibt die Knoten-ID eines Drugs zurück. Ohne aufgelöste ChEMBL-ID
// wird ersatzweise eine ID aus der PharmGKB Accession Id gebildet.
func DrugDcid(drug *models.Drug) string {
	if drug.ChemblID != "" {
		return "bio/" + drug.ChemblID
	}
	return "bio/" + drug.PharmGKBID
}

// GeneDcids gibt die beiden Genome-Build-spezifischen Knoten-IDs eines
// Gen-Symbols zurück. Ohne Symbol gibt es keine IDs.
func GeneDcids(symbol string) []string {
	if symbol == "" {
		return nil
	}
	return []string{"bio/hg19_" + symbol, "bio/hg38_" + symbol}
}
