package models

// Relationship repräsentiert eine Zeile aus relationships.tsv. Drug und Gen
// können in beiden Spaltenreihenfolgen stehen; die Typ-Spalten entscheiden.
type Relationship struct {
	Entity1ID   string `json:"entity1_id"`
	Entity1Type string `json:"entity1_type"`
	Entity2ID   string `json:"entity2_id"`
	Entity2Type string `json:"entity2_type"`

	// Evidence und Association sind komma-separierte Enum-Code-Listen.
	Evidence    string `json:"evidence,omitempty"`
	Association string `json:"association,omitempty"`

	// PK/PD enthalten das jeweilige Sentinel ("PK"/"PD") oder sind leer.
	PK string `json:"pk,omitempty"`
	PD string `json:"pd,omitempty"`

	// PMIDs ist eine semikolon-separierte Liste von Literaturverweisen.
	PMIDs string `json:"pmids,omitempty"`
}

// IsDrugGene meldet, ob die Zeile ein Chemical-Gene-Paar in dieser Reihenfolge ist.
func (r *Relationship) IsDrugGene() bool {
	return r.Entity1Type == "Chemical" && r.Entity2Type == "Gene"
}

// IsGeneDrug meldet, ob die Zeile ein Gene-Chemical-Paar in dieser Reihenfolge ist.
func (r *Relationship) IsGeneDrug() bool {
	return r.Entity1Type == "Gene" && r.Entity2Type == "Chemical"
}
