package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dssvels/invoicer/models"
)

// DefaultPath is the config file location when none is configured.
const DefaultPath = "invoice_config.json"

// Default returns the state used when no config has been persisted yet.
func Default() models.Config {
	return models.Config{
		LastInvoiceNumber: 1,
		PaymentTermsDays:  14,
		Language:          models.LanguageDutch,
		Description:       "Invoice for ice skating activities at DSSV ELS.",
	}
}

// Store persists the sequence/configuration record as a single JSON file.
// Every mutation path loads the whole record, changes one field and saves
// the whole record back; there is no partial update.
type Store struct {
	Path string
}

// Open returns a store at path, falling back to DefaultPath.
func Open(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Load reads the persisted record. A missing file is not an error: defaults
// are persisted immediately and returned. Out-of-range stored values are
// normalized back to defaults so a hand-edited file cannot wedge startup.
func (s *Store) Load() (models.Config, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg := Default()
		if err := s.Save(cfg); err != nil {
			return models.Config{}, err
		}
		slog.Info("config created with defaults", "path", s.Path)
		return cfg, nil
	}
	if err != nil {
		return models.Config{}, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return models.Config{}, fmt.Errorf("parsing config %s: %w", s.Path, err)
	}
	normalize(&cfg)
	return cfg, nil
}

// Save overwrites the persisted record. The file is written next to its
// final name and renamed into place so a crash cannot leave a half-written
// config visible.
func (s *Store) Save(cfg models.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing config: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func normalize(cfg *models.Config) {
	def := Default()
	if cfg.LastInvoiceNumber < 1 {
		cfg.LastInvoiceNumber = def.LastInvoiceNumber
	}
	if cfg.PaymentTermsDays < 1 {
		cfg.PaymentTermsDays = def.PaymentTermsDays
	}
	switch cfg.Language {
	case models.LanguageDutch, models.LanguageEnglish:
	default:
		cfg.Language = def.Language
	}
	if cfg.Description == "" {
		cfg.Description = def.Description
	}
}
