package models

// Gene repräsentiert eine Zeile aus genes.tsv. Ein Gene-Eintrag erzeugt im
// Output zwei Knoten, je einen pro Genome-Build (hg19 und hg38).
type Gene struct {
	PharmGKBID string `json:"pharmgkb_id"`
	Symbol     string `json:"symbol"`
	Name       string `json:"name,omitempty"`

	NCBIGeneIDs      string `json:"ncbi_gene_ids,omitempty"`
	HGNCIDs          string `json:"hgnc_ids,omitempty"`
	EnsemblIDs       string `json:"ensembl_ids,omitempty"`
	AlternateSymbols string `json:"alternate_symbols,omitempty"`

	CrossReferences string `json:"cross_references,omitempty"`
}
