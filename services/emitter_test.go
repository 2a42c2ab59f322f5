package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharm-graph/models"
)

func testGene() *models.Gene {
	return &models.Gene{
		PharmGKBID:       "PA27093",
		Symbol:           "CYP1A2",
		Name:             "cytochrome P450 family 1 subfamily A member 2",
		NCBIGeneIDs:      "1544",
		HGNCIDs:          "2621",
		AlternateSymbols: "CP12",
		CrossReferences:  `"NCBI Gene:1544","UniProtKB:P05177"`,
	}
}

func TestGeneNode(t *testing.T) {
	e := NewEmitter(zap.NewNop())

	node, err := e.GeneNode(testGene(), "bio/hg19_CYP1A2")
	require.NoError(t, err)

	expected := "Node: dcid:bio/hg19_CYP1A2\n" +
		"typeOf: dcs:Gene\n" +
		"name: \"CYP1A2\"\n" +
		"fullName: \"cytochrome P450 family 1 subfamily A member 2\"\n" +
		"symbol: \"CYP1A2\"\n" +
		"pharmGKBID: \"PA27093\"\n" +
		"ncbiGeneID: \"1544\"\n" +
		"hgncID: \"2621\"\n" +
		"alternateSymbol: \"CP12\"\n" +
		"ncbiGeneID: \"1544\"\n" +
		"uniProtID: \"P05177\"\n"
	assert.Equal(t, expected, node)
}

func TestGeneNodePairSharesFields(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	gene := testGene()

	hg19, err := e.GeneNode(gene, "bio/hg19_CYP1A2")
	require.NoError(t, err)
	hg38, err := e.GeneNode(gene, "bio/hg38_CYP1A2")
	require.NoError(t, err)

	// Beide Knoten unterscheiden sich nur im Genome-Build-Präfix der ID.
	assert.Equal(t, hg38, strings.ReplaceAll(hg19, "hg19_", "hg38_"))
}

func TestDrugNode(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	drug := &models.Drug{
		PharmGKBID:      "PA448",
		Name:            "aspirin",
		TradeNames:      `"Bayer Aspirin","Ecotrin"`,
		Type:            "Drug",
		SMILES:          "CC(=O)OC1=CC=CC=C1C(=O)O",
		CrossReferences: `"DrugBank:DB00945"`,
		ChemblID:        "CHEMBL25",
	}

	node, err := e.DrugNode(drug, "bio/CHEMBL25")
	require.NoError(t, err)

	expected := "Node: dcid:bio/CHEMBL25\n" +
		"typeOf: dcs:Drug\n" +
		"name: \"CHEMBL25\"\n" +
		"commonName: \"aspirin\"\n" +
		"tradeName: \"Bayer Aspirin\",\"Ecotrin\"\n" +
		"smiles: \"CC(=O)OC1=CC=CC=C1C(=O)O\"\n" +
		"pharmGKBID: \"PA448\"\n" +
		"drugBankID: \"DB00945\"\n"
	assert.Equal(t, expected, node)
}

func TestDrugNodeFallbackName(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	drug := &models.Drug{PharmGKBID: "PA999", Name: "examplin"}

	node, err := e.DrugNode(drug, "bio/PA999")
	require.NoError(t, err)

	// Ohne ChEMBL-ID trägt der Knoten die Accession Id als name.
	assert.Contains(t, node, "Node: dcid:bio/PA999\n")
	assert.Contains(t, node, "name: \"PA999\"\n")
	assert.Contains(t, node, "typeOf: dcs:ChemicalCompound\n")
}

func TestRelationNode(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	rel := &models.Relationship{
		Entity1ID:   "PA448",
		Entity1Type: "Chemical",
		Entity2ID:   "PA27093",
		Entity2Type: "Gene",
		Evidence:    "ClinicalAnnotation",
		Association: "associated",
		PK:          "PK",
		PMIDs:       "111;222",
	}

	node, err := e.RelationNode(rel, "bio/CHEMBL25", "bio/hg19_CYP1A2")
	require.NoError(t, err)

	expected := "Node: dcid:bio/CGA_CHEMBL25_hg19_CYP1A2\n" +
		"typeOf: dcs:ChemicalCompoundGeneAssociation\n" +
		"name: \"CGA_CHEMBL25_hg19_CYP1A2\"\n" +
		"geneID: dcid:bio/hg19_CYP1A2\n" +
		"compoundID: dcid:bio/CHEMBL25\n" +
		"pubMedID: \"111\",\"222\"\n" +
		"isPharmacokineticRelationship: True\n" +
		"relationshipAssociationType: dcid:RelationshipAssociationTypeAssociated\n" +
		"pharmGKBEvidenceType: dcid:PharmGKBEvidenceTypeClinicalAnnotation\n"
	assert.Equal(t, expected, node)
}

func TestRelationNodeUnknownEvidenceFails(t *testing.T) {
	e := NewEmitter(zap.NewNop())
	rel := &models.Relationship{Evidence: "NotAnEvidenceType", Association: "associated"}

	_, err := e.RelationNode(rel, "bio/CHEMBL25", "bio/hg19_CYP1A2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotAnEvidenceType")
}
