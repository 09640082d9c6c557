package app

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"infohud/internal/lang"
	"infohud/internal/overlay"
	"infohud/internal/world"
)

// Overlay bundles the HUD composer with its collaborators.
type Overlay struct {
	Composer   *overlay.Composer
	Bindings   *overlay.Bindings
	Translator *lang.Translator
}

// NewOverlay loads languages, registers the toggle bindings with any
// configured overrides and builds the composer.
func NewOverlay(cfg *Config, logger *slog.Logger) (*Overlay, error) {
	if logger == nil {
		logger = slog.Default()
	}
	tr, err := lang.New()
	if err != nil {
		return nil, fmt.Errorf("languages: %w", err)
	}
	if cfg.LanguageFile != "" {
		data, err := os.ReadFile(cfg.LanguageFile)
		if err != nil {
			return nil, fmt.Errorf("language file: %w", err)
		}
		if err := tr.Load(cfg.Language, data); err != nil {
			return nil, err
		}
	}
	active := tr.Use(cfg.Language)
	if want, err := lang.ParseTag(cfg.Language); err != nil || want != active {
		logger.Warn("language not available, using closest match",
			"requested", cfg.Language,
			"active", active,
			"available", tr.Languages())
	}

	bindings, err := overlay.NewBindings(overlay.DefaultBindings())
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(cfg.Keys))
	for id := range cfg.Keys {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := bindings.Rebind(id, overlay.Key(cfg.Keys[id])); err != nil {
			return nil, fmt.Errorf("key override: %w", err)
		}
	}
	for _, b := range bindings.Specs() {
		logger.Debug("registered key binding",
			"id", b.ID,
			"name", tr.Translate(b.ID),
			"key", string(b.Key),
			"category", tr.Translate(b.Category))
	}

	return &Overlay{
		Composer:   overlay.NewComposer(bindings, tr.Func()),
		Bindings:   bindings,
		Translator: tr,
	}, nil
}

// NewSession creates the world described by cfg and an empty session.
func NewSession(cfg *Config) *Session {
	wcfg := world.DefaultConfig()
	wcfg.Seed = cfg.Seed
	wcfg.RegionSize = cfg.RegionSize
	return &Session{World: world.New(wcfg), Opacity: cfg.BackgroundOpacity}
}
