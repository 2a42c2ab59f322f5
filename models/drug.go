package models

// Drug repräsentiert einen kombinierten Eintrag aus drugs.tsv und chemicals.tsv.
// Die Felder tragen die Rohwerte der TSV-Spalten; ChemblID wird erst vom
// Resolver gesetzt und danach nicht mehr verändert.
type Drug struct {
	PharmGKBID string `json:"pharmgkb_id"`
	Name       string `json:"name,omitempty"`
	TradeNames string `json:"trade_names,omitempty"`

	// Type ist die komma-separierte Typliste aus PharmGKB (z.B. "Drug,Metabolite").
	Type string `json:"type,omitempty"`

	SMILES   string `json:"smiles,omitempty"`
	InChI    string `json:"inchi,omitempty"`
	InChIKey string `json:"inchi_key,omitempty"`

	RxNormIDs          string `json:"rxnorm_ids,omitempty"`
	ATCIDs             string `json:"atc_ids,omitempty"`
	PubChemCompoundIDs string `json:"pubchem_compound_ids,omitempty"`

	CrossReferences string `json:"cross_references,omitempty"`

	// ChemblID ist die per Prioritäts-Merge aufgelöste kanonische ChEMBL-ID.
	// Leer, wenn keine der drei Konvertierungstabellen einen Treffer lieferte.
	ChemblID string `json:"chembl_id,omitempty"`
}
