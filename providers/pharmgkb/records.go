package pharmgkb

import (
	"pharm-graph/models"
)

// Spaltennamen der PharmGKB-TSV-Dateien.
const (
	colAccessionID      = "PharmGKB Accession Id"
	colName             = "Name"
	colTradeNames       = "Trade Names"
	colType             = "Type"
	colSMILES           = "SMILES"
	colInChI            = "InChI"
	colRxNorm           = "RxNorm Identifiers"
	colATC              = "ATC Identifiers"
	colPubChemCompound  = "PubChem Compound Identifiers"
	colCrossReferences  = "Cross-references"
	colSymbol           = "Symbol"
	colNCBIGene         = "NCBI Gene ID"
	colHGNC             = "HGNC ID"
	colEnsembl          = "Ensembl Id"
	colAlternateSymbols = "Alternate Symbols"
	colEntity1ID        = "Entity1_id"
	colEntity1Type      = "Entity1_type"
	colEntity2ID        = "Entity2_id"
	colEntity2Type      = "Entity2_type"
	colEvidence         = "Evidence"
	colAssociation      = "Association"
	colPK               = "PK"
	colPD               = "PD"
	colPMIDs            = "PMIDs"
)

// DrugFromRow wandelt eine Zeile aus drugs.tsv oder chemicals.tsv in unser
// Drug-Modell um. ChemblID bleibt leer und wird später vom Resolver gesetzt.
func DrugFromRow(row Row) *models.Drug {
	return &models.Drug{
		PharmGKBID:         row[colAccessionID],
		Name:               row[colName],
		TradeNames:         row[colTradeNames],
		Type:               row[colType],
		SMILES:             row[colSMILES],
		InChI:              row[colInChI],
		RxNormIDs:          row[colRxNorm],
		ATCIDs:             row[colATC],
		PubChemCompoundIDs: row[colPubChemCompound],
		CrossReferences:    row[colCrossReferences],
	}
}

// GeneFromRow wandelt eine Zeile aus genes.tsv in unser Gene-Modell um.
func GeneFromRow(row Row) *models.Gene {
	return &models.Gene{
		PharmGKBID:       row[colAccessionID],
		Symbol:           row[colSymbol],
		Name:             row[colName],
		NCBIGeneIDs:      row[colNCBIGene],
		HGNCIDs:          row[colHGNC],
		EnsemblIDs:       row[colEnsembl],
		AlternateSymbols: row[colAlternateSymbols],
		CrossReferences:  row[colCrossReferences],
	}
}

// RelationshipFromRow wandelt eine Zeile aus relationships.tsv um.
func RelationshipFromRow(row Row) *models.Relationship {
	return &models.Relationship{
		Entity1ID:   row[colEntity1ID],
		Entity1Type: row[colEntity1Type],
		Entity2ID:   row[colEntity2ID],
		Entity2Type: row[colEntity2Type],
		Evidence:    row[colEvidence],
		Association: row[colAssociation],
		PK:          row[colPK],
		PD:          row[colPD],
		PMIDs:       row[colPMIDs],
	}
}
