package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config enthält alle Konfigurationsparameter aus Umgebungsvariablen.
type Config struct {
	// PharmGKB Download-Quellen
	ChemicalsURL     string `envconfig:"PHARMGKB_CHEMICALS_URL" default:"https://api.pharmgkb.org/v1/download/file/data/chemicals.zip"`
	DrugsURL         string `envconfig:"PHARMGKB_DRUGS_URL" default:"https://api.pharmgkb.org/v1/download/file/data/drugs.zip"`
	GenesURL         string `envconfig:"PHARMGKB_GENES_URL" default:"https://api.pharmgkb.org/v1/download/file/data/genes.zip"`
	RelationshipsURL string `envconfig:"PHARMGKB_RELATIONSHIPS_URL" default:"https://api.pharmgkb.org/v1/download/file/data/relationships.zip"`

	// Lokales Datenlayout
	RawDataDir    string `envconfig:"RAW_DATA_DIR" default:"./raw_data"`
	ConversionDir string `envconfig:"CONVERSION_DIR" default:"./conversion"`
	OutputFile    string `envconfig:"OUTPUT_FILE" default:"./pharmgkb.mcf"`

	// SKIP_DOWNLOAD erlaubt Offline-Läufe, wenn die Archive bereits entpackt sind.
	SkipDownload bool `envconfig:"SKIP_DOWNLOAD" default:"false"`

	// CRON_SCHEDULE aktiviert wiederholte Läufe; leer bedeutet einmaliger Batch-Lauf.
	CronSchedule string `envconfig:"CRON_SCHEDULE"`

	// Optionaler S3-Upload des erzeugten Artefakts (Strato HiDrive kompatibel).
	S3Upload       bool   `envconfig:"S3_UPLOAD" default:"false"`
	StratoS3Key    string `envconfig:"STRATO_S3_KEY"`
	StratoS3Secret string `envconfig:"STRATO_S3_SECRET"`
	StratoS3URL    string `envconfig:"STRATO_S3_URL"`
	StratoS3Region string `envconfig:"STRATO_S3_REGION"`
	StratoS3Bucket string `envconfig:"STRATO_S3_BUCKET"`
}

// DatasetDir gibt das Extraktionsverzeichnis für ein Dataset zurück.
func (c *Config) DatasetDir(name string) string {
	return filepath.Join(c.RawDataDir, name)
}

// DatasetFile gibt den Pfad der entpackten TSV-Datei eines Datasets zurück.
func (c *Config) DatasetFile(name string) string {
	return filepath.Join(c.RawDataDir, name, name+".tsv")
}

// ConversionFile gibt den Pfad einer Konvertierungstabelle zurück.
func (c *Config) ConversionFile(name string) string {
	return filepath.Join(c.ConversionDir, name)
}

// Load lädt die Konfiguration aus den Umgebungsvariablen.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
