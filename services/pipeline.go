package services

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"

	"pharm-graph/config"
	"pharm-graph/models"
	"pharm-graph/providers/pharmgkb"
	"pharm-graph/storage"
)

// Pipeline orchestriert den gesamten Batch-Lauf: Download, Tabellen-Laden,
// Knoten-Emission und Schreiben der Output-Datei. Der Lauf ist strikt
// sequenziell; die Identifier-Maps werden in den Gen-/Drug-Pässen aufgebaut
// und erst im Relationship-Pass gelesen.
type Pipeline struct {
	Config  *config.Config
	Logger  *zap.Logger
	Fetcher *pharmgkb.Fetcher
	Emitter *Emitter

	// S3Client ist nil, wenn kein Artefakt-Upload konfiguriert ist.
	S3Client *s3.Client
}

// NewPipeline erstellt eine neue Pipeline.
func NewPipeline(cfg *config.Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		Config:  cfg,
		Logger:  logger,
		Fetcher: pharmgkb.NewFetcher(cfg, logger),
		Emitter: NewEmitter(logger),
	}
}

// Run führt einen kompletten Lauf aus und schreibt die Output-Datei.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.Config.SkipDownload {
		p.Logger.Info("SKIP_DOWNLOAD gesetzt, nutze vorhandene Rohdaten",
			zap.String("raw_data_dir", p.Config.RawDataDir))
	} else {
		if err := p.Fetcher.DownloadAll(ctx); err != nil {
			return err
		}
	}

	conversions, err := LoadConversionMaps(p.Config)
	if err != nil {
		return err
	}

	out, err := os.Create(p.Config.OutputFile)
	if err != nil {
		return fmt.Errorf("output-datei konnte nicht angelegt werden: %w", err)
	}
	defer out.Close()

	ids := NewIdentifierMaps()

	geneCount, err := p.writeGenes(out, ids)
	if err != nil {
		return err
	}
	p.Logger.Info("Gen-Knoten geschrieben", zap.Int("nodes", geneCount))

	drugCount, err := p.writeDrugs(out, conversions, ids)
	if err != nil {
		return err
	}
	p.Logger.Info("Drug-Knoten geschrieben", zap.Int("nodes", drugCount))

	relationCount, err := p.writeRelationships(out, ids)
	if err != nil {
		return err
	}
	p.Logger.Info("Association-Knoten geschrieben", zap.Int("nodes", relationCount))

	if err := out.Sync(); err != nil {
		return err
	}

	p.Logger.Info("Lauf abgeschlossen",
		zap.String("output_file", p.Config.OutputFile),
		zap.Int("total_nodes", geneCount+drugCount+relationCount))

	if p.Config.S3Upload && p.S3Client != nil {
		return p.uploadArtifact(ctx)
	}
	return nil
}

// writeGenes schreibt pro genes.tsv-Zeile zwei Gen-Knoten (hg19 und hg38)
// und registriert die Dcids in der Gen-Identifier-Map.
func (p *Pipeline) writeGenes(out *os.File, ids *IdentifierMaps) (int, error) {
	rows, err := pharmgkb.LoadTSV(p.Config.DatasetFile("genes"))
	if err != nil {
		return 0, fmt.Errorf("genes.tsv konnte nicht geladen werden: %w", err)
	}

	count := 0
	for _, row := range rows {
		gene := pharmgkb.GeneFromRow(row)
		dcids := GeneDcids(gene.Symbol)
		if len(dcids) == 0 {
			p.Logger.Warn("Gen ohne Symbol, Zeile wird übersprungen",
				zap.String("pharm_id", gene.PharmGKBID))
			continue
		}
		ids.Genes[gene.PharmGKBID] = dcids

		for _, dcid := range dcids {
			node, err := p.Emitter.GeneNode(gene, dcid)
			if err != nil {
				return count, err
			}
			if err := writeNode(out, node); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// writeDrugs vereinigt drugs.tsv und chemicals.tsv, löst die ChEMBL-IDs auf
// und schreibt pro eindeutiger Accession Id einen Knoten.
func (p *Pipeline) writeDrugs(out *os.File, conversions *ConversionMaps, ids *IdentifierMaps) (int, error) {
	drugRows, err := pharmgkb.LoadTSV(p.Config.DatasetFile("drugs"))
	if err != nil {
		return 0, fmt.Errorf("drugs.tsv konnte nicht geladen werden: %w", err)
	}
	chemicalRows, err := pharmgkb.LoadTSV(p.Config.DatasetFile("chemicals"))
	if err != nil {
		return 0, fmt.Errorf("chemicals.tsv konnte nicht geladen werden: %w", err)
	}

	count := 0
	seen := make(map[string]bool)
	for _, row := range append(drugRows, chemicalRows...) {
		drug := pharmgkb.DrugFromRow(row)
		if drug.PharmGKBID == "" {
			p.Logger.Warn("Eintrag ohne Accession Id, Zeile wird übersprungen")
			continue
		}
		if seen[drug.PharmGKBID] {
			continue
		}
		seen[drug.PharmGKBID] = true

		conversions.Resolve(drug)
		dcid := DrugDcid(drug)
		ids.Drugs[drug.PharmGKBID] = dcid

		node, err := p.Emitter.DrugNode(drug, dcid)
		if err != nil {
			return count, err
		}
		if err := writeNode(out, node); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// writeRelationships schreibt die Association-Knoten. Die Tabelle wird in
// zwei Durchläufen verarbeitet: zuerst alle Chemical->Gene-Zeilen, dann alle
// Gene->Chemical-Zeilen; andere Typ-Kombinationen werden ignoriert.
func (p *Pipeline) writeRelationships(out *os.File, ids *IdentifierMaps) (int, error) {
	rows, err := pharmgkb.LoadTSV(p.Config.DatasetFile("relationships"))
	if err != nil {
		return 0, fmt.Errorf("relationships.tsv konnte nicht geladen werden: %w", err)
	}

	relations := make([]*models.Relationship, 0, len(rows))
	for _, row := range rows {
		relations = append(relations, pharmgkb.RelationshipFromRow(row))
	}

	count := 0
	for _, drugFirst := range []bool{true, false} {
		for _, rel := range relations {
			if drugFirst && !rel.IsDrugGene() {
				continue
			}
			if !drugFirst && !rel.IsGeneDrug() {
				continue
			}
			written, err := p.writeRelationRow(out, rel, drugFirst, ids)
			if err != nil {
				return count, err
			}
			count += written
		}
	}
	return count, nil
}

// writeRelationRow löst beide Endpunkte über die Identifier-Maps auf und
// schreibt pro Gen-Dcid einen Association-Knoten. Nicht auflösbare Endpunkte
// überspringen die Zeile mit einer Warnung, sie brechen den Lauf nie ab.
func (p *Pipeline) writeRelationRow(out *os.File, rel *models.Relationship, drugFirst bool, ids *IdentifierMaps) (int, error) {
	drugPharm, genePharm := rel.Entity1ID, rel.Entity2ID
	if !drugFirst {
		drugPharm, genePharm = rel.Entity2ID, rel.Entity1ID
	}

	drugDcid, ok := ids.Drugs[drugPharm]
	if !ok {
		p.Logger.Warn("Unbekannte Drug-Accession-Id in Relationship, Zeile wird übersprungen",
			zap.String("drug_pharm_id", drugPharm))
		return 0, nil
	}
	geneDcids, ok := ids.Genes[genePharm]
	if !ok {
		p.Logger.Warn("Unbekannte Gen-Accession-Id in Relationship, Zeile wird übersprungen",
			zap.String("gene_pharm_id", genePharm))
		return 0, nil
	}

	written := 0
	for _, geneDcid := range geneDcids {
		node, err := p.Emitter.RelationNode(rel, drugDcid, geneDcid)
		if err != nil {
			return written, err
		}
		if err := writeNode(out, node); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// uploadArtifact lädt die fertige Output-Datei in den konfigurierten Bucket.
func (p *Pipeline) uploadArtifact(ctx context.Context) error {
	data, err := os.ReadFile(p.Config.OutputFile)
	if err != nil {
		return err
	}
	link, err := storage.UploadArtifact(ctx, p.S3Client, p.Config.StratoS3Bucket, "pharmgkb.mcf", data, p.Config)
	if err != nil {
		return fmt.Errorf("s3-upload fehlgeschlagen: %w", err)
	}
	p.Logger.Info("Artefakt nach S3 hochgeladen", zap.String("link", link))
	return nil
}

// writeNode schreibt einen Knoten-Block gefolgt von einer Leerzeile.
func writeNode(out *os.File, node string) error {
	_, err := out.WriteString(node + "\n")
	return err
}
