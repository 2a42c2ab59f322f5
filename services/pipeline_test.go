package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pharm-graph/config"
)

func writeFixture(t *testing.T, path string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

// testConfig legt ein komplettes Fixture-Layout in einem Temp-Verzeichnis an:
// die vier entpackten PharmGKB-Tabellen plus die Konvertierungstabellen.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		RawDataDir:    filepath.Join(dir, "raw_data"),
		ConversionDir: filepath.Join(dir, "conversion"),
		OutputFile:    filepath.Join(dir, "pharmgkb.mcf"),
		SkipDownload:  true,
	}

	writeFixture(t, cfg.DatasetFile("genes"),
		"PharmGKB Accession Id\tNCBI Gene ID\tHGNC ID\tEnsembl Id\tName\tSymbol\tAlternate Symbols\tCross-references",
		"PA27093\t1544\t2621\tENSG00000140505\tcytochrome P450 family 1 subfamily A member 2\tCYP1A2\tCP12\t\"NCBI Gene:1544\",\"UniProtKB:P05177\"",
		"PA128\t1017\t1771\tENSG00000123374\tcyclin dependent kinase 2\tCDK2\t\t",
		// Zeile ohne Symbol, muss übersprungen werden
		"PA555\t\t\t\tmystery gene\t\t\t")

	drugHeader := "PharmGKB Accession Id\tName\tTrade Names\tType\tCross-references\tSMILES\tInChI\tRxNorm Identifiers\tATC Identifiers\tPubChem Compound Identifiers"
	writeFixture(t, cfg.DatasetFile("drugs"),
		drugHeader,
		"PA448\taspirin\t\"Bayer Aspirin\",\"Ecotrin\"\tDrug\t\"DrugBank:DB00945\"\tCC(=O)OC1=CC=CC=C1C(=O)O\t\t1191\tN02BA01\t2244",
		"PA449\tibuprofen\t\tDrug\t\t\t\t\t\t3672")
	writeFixture(t, cfg.DatasetFile("chemicals"),
		drugHeader,
		"PA165\tcaffeine\t\tMetabolite\t\t\tInChI=1S/C8H10N4O2\t\t\t",
		"PA999\texamplin\t\t\t\t\t\t\t\t",
		// Duplikat einer drugs.tsv-Accession, darf keinen zweiten Knoten erzeugen
		"PA448\taspirin\t\tDrug\t\t\t\t\t\t")

	writeFixture(t, cfg.DatasetFile("relationships"),
		"Entity1_id\tEntity1_name\tEntity1_type\tEntity2_id\tEntity2_name\tEntity2_type\tEvidence\tAssociation\tPK\tPD\tPMIDs",
		"PA448\taspirin\tChemical\tPA27093\tCYP1A2\tGene\tClinicalAnnotation\tassociated\tPK\t\t111;222",
		// Unbekannter Gen-Endpunkt, Zeile muss mit Warnung übersprungen werden
		"PA448\taspirin\tChemical\tPA000\tGHOST\tGene\tClinicalAnnotation\tassociated\t\t\t",
		"PA128\tCDK2\tGene\tPA165\tcaffeine\tChemical\tVariantAnnotation\tassociated\t\tPD\t333")

	writeFixture(t, cfg.ConversionFile("pharm_id_to_chembl.csv"),
		"PharmGKB ID,ChEMBL ID",
		"PA448,CHEMBL25")
	writeFixture(t, cfg.ConversionFile("pubchem_id_to_chembl.csv"),
		"PubChem ID,ChEMBL ID",
		"3672,CHEMBL521")
	writeFixture(t, cfg.ConversionFile("inchi_to_inchi_key.csv"),
		"InChI,InChI Key",
		"InChI=1S/C8H10N4O2,RYYVLZVUVIJVGH-UHFFFAOYSA-N")
	writeFixture(t, cfg.ConversionFile("inchi_key_to_chembl.csv"),
		"InChI Key,ChEMBL ID",
		"RYYVLZVUVIJVGH-UHFFFAOYSA-N,CHEMBL113")

	return cfg
}

func TestPipelineRun(t *testing.T) {
	cfg := testConfig(t)
	p := NewPipeline(cfg, zap.NewNop())

	require.NoError(t, p.Run(context.Background()))

	raw, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)
	output := string(raw)

	// 2 Gene x 2 Builds + 4 eindeutige Drugs + 2 aufgelöste Relationships x 2 Builds.
	assert.Equal(t, 12, strings.Count(output, "Node: dcid:"))

	// Gen-Knoten kommen paarweise.
	assert.Contains(t, output, "Node: dcid:bio/hg19_CYP1A2\n")
	assert.Contains(t, output, "Node: dcid:bio/hg38_CYP1A2\n")

	// ChEMBL-Auflösung über alle drei Stufen plus Fallback.
	assert.Contains(t, output, "Node: dcid:bio/CHEMBL25\n")
	assert.Contains(t, output, "Node: dcid:bio/CHEMBL521\n")
	assert.Contains(t, output, "Node: dcid:bio/CHEMBL113\n")
	assert.Contains(t, output, "Node: dcid:bio/PA999\n")
	assert.Contains(t, output, "inChIKey: \"RYYVLZVUVIJVGH-UHFFFAOYSA-N\"\n")

	// Eingebettete Anführungszeichen der TSV-Quelle bleiben erhalten.
	assert.Contains(t, output, "tradeName: \"Bayer Aspirin\",\"Ecotrin\"\n")

	// Beide Relationship-Richtungen erzeugen Knoten, Chemical->Gene zuerst.
	drugFirst := strings.Index(output, "Node: dcid:bio/CGA_CHEMBL25_hg19_CYP1A2\n")
	geneFirst := strings.Index(output, "Node: dcid:bio/CGA_CHEMBL113_hg19_CDK2\n")
	require.GreaterOrEqual(t, drugFirst, 0)
	require.GreaterOrEqual(t, geneFirst, 0)
	assert.Less(t, drugFirst, geneFirst)
	assert.Contains(t, output, "Node: dcid:bio/CGA_CHEMBL113_hg38_CDK2\n")

	// Der nicht auflösbare Endpunkt taucht nirgends auf.
	assert.NotContains(t, output, "PA000")
	assert.NotContains(t, output, "PA555")
}

func TestPipelineRunMissingConversionTable(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.Remove(cfg.ConversionFile("inchi_key_to_chembl.csv")))

	p := NewPipeline(cfg, zap.NewNop())
	err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inchi_key_to_chembl.csv")
}
