package main

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kelseyhightower/envconfig"
)

// ArchiveConfig konfiguriert die Archivierung des erzeugten MCF-Artefakts.
type ArchiveConfig struct {
	OutputFile       string `envconfig:"OUTPUT_FILE" default:"./pharmgkb.mcf"`
	ArchiveBucket    string `envconfig:"ARCHIVE_S3_BUCKET" required:"true"`
	ArchiveEndpoint  string `envconfig:"ARCHIVE_S3_ENDPOINT" required:"true"`
	ArchiveAccessKey string `envconfig:"ARCHIVE_S3_ACCESS_KEY" required:"true"`
	ArchiveSecretKey string `envconfig:"ARCHIVE_S3_SECRET_KEY" required:"true"`
	ArchiveRegion    string `envconfig:"ARCHIVE_S3_REGION" required:"true"`
	KeepArchives     int    `envconfig:"KEEP_ARCHIVES" default:"4"`
}

func main() {
	log.Println("Starte Archivierungs-Prozess...")

	var cfg ArchiveConfig
	err := envconfig.Process("", &cfg)
	if err != nil {
		log.Fatalf("Fehler beim Laden der Konfiguration: %v", err)
	}

	// 1. Artefakt lesen und komprimieren
	data, err := compressArtifact(cfg.OutputFile)
	if err != nil {
		log.Fatalf("Fehler beim Lesen des Artefakts: %v", err)
	}

	// 2. S3-Client erstellen
	s3Client, err := createS3Client(cfg)
	if err != nil {
		log.Fatalf("Fehler beim Erstellen des S3-Clients: %v", err)
	}

	// 3. Archiv nach S3 hochladen
	fileName := fmt.Sprintf("pharmgkb-%s.mcf.gz", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	err = uploadToS3(s3Client, cfg, fileName, data)
	if err != nil {
		log.Fatalf("Fehler beim Hochladen nach S3: %v", err)
	}
	log.Printf("Archiv erfolgreich nach s3://%s/%s hochgeladen", cfg.ArchiveBucket, fileName)

	// 4. Alte Archive rotieren
	err = rotateArchives(s3Client, cfg)
	if err != nil {
		log.Fatalf("Fehler bei der Rotation alter Archive: %v", err)
	}

	log.Println("Archivierungs-Prozess erfolgreich abgeschlossen.")
}

func compressArtifact(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	if _, err := gzipWriter.Write(raw); err != nil {
		return nil, err
	}
	if err := gzipWriter.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func createS3Client(cfg ArchiveConfig) (*s3.Client, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: cfg.ArchiveEndpoint,
		}, nil
	})

	awsCfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithEndpointResolverWithOptions(resolver),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.ArchiveAccessKey, cfg.ArchiveSecretKey, "")),
		config.WithRegion(cfg.ArchiveRegion),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg), nil
}

func uploadToS3(client *s3.Client, cfg ArchiveConfig, key string, data []byte) error {
	_, err := client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(cfg.ArchiveBucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	})
	return err
}

func rotateArchives(client *s3.Client, cfg ArchiveConfig) error {
	output, err := client.ListObjectsV2(context.TODO(), &s3.ListObjectsV2Input{
		Bucket: aws.String(cfg.ArchiveBucket),
	})
	if err != nil {
		return err
	}

	if len(output.Contents) <= cfg.KeepArchives {
		log.Printf("Weniger als %d Archive vorhanden, keine Rotation nötig.", cfg.KeepArchives)
		return nil
	}

	sort.Slice(output.Contents, func(i, j int) bool {
		return output.Contents[i].LastModified.After(*output.Contents[j].LastModified)
	})

	for _, obj := range output.Contents[cfg.KeepArchives:] {
		log.Printf("Lösche altes Archiv: %s", *obj.Key)
		_, err := client.DeleteObject(context.TODO(), &s3.DeleteObjectInput{
			Bucket: aws.String(cfg.ArchiveBucket),
			Key:    obj.Key,
		})
		if err != nil {
			log.Printf("Fehler beim Löschen von %s: %v", *obj.Key, err)
		}
	}

	return nil
}
