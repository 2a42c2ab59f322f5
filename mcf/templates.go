// Package mcf bündelt die statischen Bausteine des MCF-Outputs: die
// Knoten-Templates mit ihren Pflicht-Platzhaltern, die Enum-Tabellen für
// Association und Evidence sowie die Cross-Reference-Property-Tabellen.
package mcf

// GeneTemplate ist das Template für Gen-Knoten. Listenfelder (ncbi_ids etc.)
// sind beim Einsetzen bereits als quotierte Kommalisten formatiert.
const GeneTemplate = `
Node: dcid:{dcid}
typeOf: dcs:Gene
name: "{symbol}"
fullName: "{name}"
symbol: "{symbol}"
pharmGKBID: "{pharm_id}"
ncbiGeneID: {ncbi_ids}
hgncID: {hgnc_ids}
ensemblID: {ensembl_ids}
alternateSymbol: {alt_symbols}
`

// GeneRequiredVars sind die Pflicht-Platzhalter des Gen-Templates.
var GeneRequiredVars = []string{"dcid"}

// DrugTemplate ist das Template für Drug- bzw. ChemicalCompound-Knoten.
const DrugTemplate = `
Node: dcid:{dcid}
typeOf: {type}
name: "{dc_name}"
commonName: "{name}"
tradeName: {trade_names}
smiles: "{smiles}"
inChI: "{inchi}"
inChIKey: "{inchi_key}"
pharmGKBID: "{pharm_id}"
rxNormID: {rx_ids}
atcCode: {atc_ids}
pubChemCompoundID: {pubchem_compound_ids}
`

// DrugRequiredVars sind die Pflicht-Platzhalter des Drug-Templates.
var DrugRequiredVars = []string{"dcid", "type"}

// RelationTemplate ist das Template für ChemicalCompoundGeneAssociation-Knoten.
const RelationTemplate = `
Node: dcid:{dcid}
typeOf: dcs:ChemicalCompoundGeneAssociation
name: "{name}"
geneID: dcid:{gene_dcid}
compoundID: dcid:{drug_dcid}
pubMedID: {pubmed_ids}
isPharmacokineticRelationship: {pk_bool}
isPharmacodynamicRelationship: {pd_bool}
relationshipAssociationType: {assoc_enums}
pharmGKBEvidenceType: {evid_enums}
`

// RelationRequiredVars sind die Pflicht-Platzhalter des Relation-Templates.
var RelationRequiredVars = []string{"dcid", "gene_dcid", "drug_dcid"}

// AssociationEnums übersetzt die Association-Spalte in Enum-Dcids.
var AssociationEnums = map[string]string{
	"associated":     "RelationshipAssociationTypeAssociated",
	"not associated": "RelationshipAssociationTypeNotAssociated",
	"ambiguous":      "RelationshipAssociationTypeAmbiguous",
}

// EvidenceEnums übersetzt die Evidence-Spalte in Enum-Dcids.
var EvidenceEnums = map[string]string{
	"ClinicalAnnotation":   "PharmGKBEvidenceTypeClinicalAnnotation",
	"GuidelineAnnotation":  "PharmGKBEvidenceTypeGuidelineAnnotation",
	"LabelAnnotation":      "PharmGKBEvidenceTypeLabelAnnotation",
	"MultilinkAnnotation":  "PharmGKBEvidenceTypeMultilinkAnnotation",
	"Pathway":              "PharmGKBEvidenceTypePathway",
	"VariantAnnotation":    "PharmGKBEvidenceTypeVariantAnnotation",
	"VipGene":              "PharmGKBEvidenceTypeVipGene",
	"VipGene/VipVariant":   "PharmGKBEvidenceTypeVipGeneVariant",
	"DataAnnotation":       "PharmGKBEvidenceTypeDataAnnotation",
	"AutomatedAnnotation":  "PharmGKBEvidenceTypeAutomatedAnnotation",
	"LiteratureAnnotation": "PharmGKBEvidenceTypeLiteratureAnnotation",
}

// GeneXrefProps übersetzt Quellennamen aus der Cross-references-Spalte von
// genes.tsv in MCF-Property-Labels. Unbekannte Quellen werden übersprungen.
var GeneXrefProps = map[string]string{
	"ALFRED":                              "alfredID",
	"Comparative Toxicogenomics Database": "comparativeToxicogenomicsDBID",
	"Ensembl":                             "ensemblID",
	"GenAtlas":                            "genAtlasID",
	"GeneCard":                            "geneCardID",
	"GO":                                  "geneOntologyID",
	"HGNC":                                "hgncID",
	"HumanCyc Gene":                       "humanCycGeneID",
	"IUPHAR Receptor":                     "iupharReceptorID",
	"MutDB":                               "mutDBID",
	"NCBI Gene":                           "ncbiGeneID",
	"OMIM":                                "omimID",
	"RefSeq DNA":                          "refSeqDNAID",
	"RefSeq Protein":                      "refSeqProteinID",
	"RefSeq RNA":                          "refSeqRNAID",
	"UCSC Genome Browser":                 "ucscGenomeBrowserID",
	"UniProtKB":                           "uniProtID",
}

// DrugXrefProps übersetzt Quellennamen aus der Cross-references-Spalte von
// drugs.tsv und chemicals.tsv in MCF-Property-Labels.
var DrugXrefProps = map[string]string{
	"ATC":                          "atcCode",
	"BindingDB":                    "bindingDBID",
	"ChEBI":                        "chebiID",
	"Chemical Abstracts Service":   "casRegistryID",
	"ChemSpider":                   "chemSpiderID",
	"ClinicalTrials.gov":           "clinicalTrialsID",
	"DrugBank":                     "drugBankID",
	"FDA Drug Label at DailyMed":   "dailyMedID",
	"GenBank":                      "genBankID",
	"HET":                          "hetID",
	"HMDB":                         "hmdbID",
	"IUPHAR Ligand":                "iupharLigandID",
	"KEGG Compound":                "keggCompoundID",
	"KEGG Drug":                    "keggDrugID",
	"National Drug Code Directory": "nationalDrugCodeID",
	"PDB":                          "pdbID",
	"PubChem Compound":             "pubChemCompoundID",
	"PubChem Substance":            "pubChemSubstanceID",
	"URL":                          "url",
	"Wikipedia":                    "wikipediaID",
}
