package analyzer

import (
	"fmt"

	"docanalyzer/internal/config"
	"docanalyzer/internal/port"
)

// ProviderFactory is a function that creates a DocumentAnalyzer from the analysis config.
type ProviderFactory func(cfg *config.AnalysisConfig) (port.DocumentAnalyzer, error)

// registry of analyzer provider factories, populated via RegisterProvider.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers an analyzer provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewAnalyzer creates a DocumentAnalyzer for cfg.Provider using the registered factory.
func NewAnalyzer(cfg *config.AnalysisConfig) (port.DocumentAnalyzer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown analysis provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
