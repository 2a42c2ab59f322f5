package pharmgkb

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"pharm-graph/config"
)

// CustomTransport fügt jeder Anfrage einen User-Agent-Header hinzu.
type CustomTransport struct {
	Transport http.RoundTripper
}

func (t *CustomTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", "pharm-graph/1.0 (+https://www.pharmgkb.org/downloads)")
	return t.Transport.RoundTrip(req)
}

// httpClient wird für alle Archiv-Downloads verwendet.
var httpClient = &http.Client{
	Timeout: 120 * time.Second,
	Transport: &CustomTransport{
		Transport: http.DefaultTransport,
	},
}

// Fetcher kapselt den Download und das Entpacken der PharmGKB-Archive.
type Fetcher struct {
	Config *config.Config
	Logger *zap.Logger
}

// NewFetcher erstellt einen neuen PharmGKB-Fetcher.
func NewFetcher(cfg *config.Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{Config: cfg, Logger: logger}
}

// DownloadAll lädt die vier Dataset-Archive herunter und entpackt sie in das
// feste Layout <RawDataDir>/<dataset>/. Jedes Zip enthält neben der TSV-Datei
// README-, License- und Versionsdateien; alle werden mit entpackt.
func (f *Fetcher) DownloadAll(ctx context.Context) error {
	datasets := map[string]string{
		"chemicals":     f.Config.ChemicalsURL,
		"drugs":         f.Config.DrugsURL,
		"genes":         f.Config.GenesURL,
		"relationships": f.Config.RelationshipsURL,
	}
	for name, url := range datasets {
		if err := f.downloadDataset(ctx, name, url); err != nil {
			return fmt.Errorf("download von %s fehlgeschlagen: %w", name, err)
		}
	}
	return nil
}

// downloadDataset holt ein einzelnes Zip-Archiv und entpackt es.
func (f *Fetcher) downloadDataset(ctx context.Context, name, url string) error {
	log := f.Logger.With(zap.String("dataset", name))
	log.Info("Lade PharmGKB-Archiv herunter", zap.String("url", url))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("bad status: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	targetDir := f.Config.DatasetDir(name)
	if err := f.extractZip(data, targetDir); err != nil {
		return err
	}

	log.Info("Archiv entpackt", zap.String("dir", targetDir), zap.Int("bytes", len(data)))
	return nil
}

// extractZip entpackt alle regulären Dateien eines Zip-Archivs in targetDir.
func (f *Fetcher) extractZip(data []byte, targetDir string) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return err
	}

	for _, file := range reader.File {
		if file.FileInfo().IsDir() || strings.Contains(file.Name, "..") {
			continue
		}
		target := filepath.Join(targetDir, filepath.Base(file.Name))

		src, err := file.Open()
		if err != nil {
			return err
		}
		dst, err := os.Create(target)
		if err != nil {
			src.Close()
			return err
		}
		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return err
		}
		f.Logger.Debug("Datei entpackt", zap.String("file", target))
	}
	return nil
}
