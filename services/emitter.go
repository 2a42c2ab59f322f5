package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"pharm-graph/mcf"
	"pharm-graph/models"
)

// IdentifierMaps sammelt die Zuordnung von PharmGKB Accession Ids zu den
// erzeugten Knoten-IDs. Sie werden während der Gen- und Drug-Pässe aufgebaut
// und beim Relationship-Pass konsumiert.
type IdentifierMaps struct {
	// Drugs: PharmGKB Accession Id -> Drug-Dcid
	Drugs map[string]string
	// Genes: PharmGKB Accession Id -> beide Genome-Build-Dcids
	Genes map[string][]string
}

// NewIdentifierMaps erstellt leere Identifier-Maps.
func NewIdentifierMaps() *IdentifierMaps {
	return &IdentifierMaps{
		Drugs: make(map[string]string),
		Genes: make(map[string][]string),
	}
}

// Emitter bildet einzelne Records auf MCF-Knoten-Blöcke ab.
type Emitter struct {
	Logger *zap.Logger

	geneFiller     *mcf.Filler
	drugFiller     *mcf.Filler
	relationFiller *mcf.Filler
}

// NewEmitter erstellt einen neuen Emitter.
func NewEmitter(logger *zap.Logger) *Emitter {
	return &Emitter{
		Logger:         logger,
		geneFiller:     mcf.NewFiller(mcf.GeneTemplate, mcf.GeneRequiredVars),
		drugFiller:     mcf.NewFiller(mcf.DrugTemplate, mcf.DrugRequiredVars),
		relationFiller: mcf.NewFiller(mcf.RelationTemplate, mcf.RelationRequiredVars),
	}
}

// GeneNode erzeugt den MCF-Block eines Gen-Knotens für eine der beiden
// Genome-Build-IDs. Der Cross-Reference-Block wird hinter das Template
// gehängt.
func (e *Emitter) GeneNode(gene *models.Gene, dcid string) (string, error) {
	values := map[string]string{
		"dcid":        dcid,
		"name":        gene.Name,
		"symbol":      gene.Symbol,
		"pharm_id":    gene.PharmGKBID,
		"ncbi_ids":    FormatTextList(e.Logger, gene.NCBIGeneIDs),
		"hgnc_ids":    FormatTextList(e.Logger, gene.HGNCIDs),
		"ensembl_ids": FormatTextList(e.Logger, gene.EnsemblIDs),
		"alt_symbols": FormatTextList(e.Logger, gene.AlternateSymbols),
	}

	node, err := e.geneFiller.Fill(values)
	if err != nil {
		return "", fmt.Errorf("gen-knoten %s: %w", dcid, err)
	}
	node += FormatXrefs(e.Logger, gene.CrossReferences, mcf.GeneXrefProps)
	return node, nil
}

// DrugNode erzeugt den MCF-Block eines Drug- bzw. ChemicalCompound-Knotens.
func (e *Emitter) DrugNode(drug *models.Drug, dcid string) (string, error) {
	values := map[string]string{
		"dcid":                 dcid,
		"type":                 CompoundType(drug.Type),
		"dc_name":              strings.TrimPrefix(dcid, "bio/"),
		"name":                 drug.Name,
		"trade_names":          FormatTextList(e.Logger, drug.TradeNames),
		"smiles":               drug.SMILES,
		"inchi":                drug.InChI,
		"inchi_key":            drug.InChIKey,
		"pharm_id":             drug.PharmGKBID,
		"rx_ids":               FormatTextList(e.Logger, drug.RxNormIDs),
		"atc_ids":              FormatTextList(e.Logger, drug.ATCIDs),
		"pubchem_compound_ids": FormatTextList(e.Logger, drug.PubChemCompoundIDs),
	}

	node, err := e.drugFiller.Fill(values)
	if err != nil {
		return "", fmt.Errorf("drug-knoten %s: %w", dcid, err)
	}
	node += FormatXrefs(e.Logger, drug.CrossReferences, mcf.DrugXrefProps)
	return node, nil
}

// RelationNode erzeugt den MCF-Block eines
// ChemicalCompoundGeneAssociation-Knotens. Die Knoten-ID wird aus den beiden
// Endpunkt-IDs (ohne bio/-Präfix) synthetisiert.
func (e *Emitter) RelationNode(rel *models.Relationship, drugDcid, geneDcid string) (string, error) {
	drugRef := strings.TrimPrefix(drugDcid, "bio/")
	geneRef := strings.TrimPrefix(geneDcid, "bio/")

	assocEnums, err := GetEnum(rel.Association, mcf.AssociationEnums)
	if err != nil {
		return "", fmt.Errorf("association von %s/%s: %w", drugRef, geneRef, err)
	}
	evidEnums, err := GetEnum(rel.Evidence, mcf.EvidenceEnums)
	if err != nil {
		return "", fmt.Errorf("evidence von %s/%s: %w", drugRef, geneRef, err)
	}

	values := map[string]string{
		"dcid":        "bio/CGA_" + drugRef + "_" + geneRef,
		"name":        "CGA_" + drugRef + "_" + geneRef,
		"gene_dcid":   geneDcid,
		"drug_dcid":   drugDcid,
		"pubmed_ids":  FormatSemicolonList(rel.PMIDs),
		"pk_bool":     FormatBool(rel.PK, "PK"),
		"pd_bool":     FormatBool(rel.PD, "PD"),
		"assoc_enums": assocEnums,
		"evid_enums":  evidEnums,
	}

	node, err := e.relationFiller.Fill(values)
	if err != nil {
		return "", fmt.Errorf("association-knoten %s/%s: %w", drugRef, geneRef, err)
	}
	return node, nil
}
