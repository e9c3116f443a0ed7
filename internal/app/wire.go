package app

import (
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"os"

	"go.uber.org/zap"

	"regiontrip/internal/console"
	"regiontrip/internal/districts"
	"regiontrip/internal/domain"
	"regiontrip/internal/navigator"
	"regiontrip/internal/regions"
)

// Wire bundles the catalog, clients and console pieces for the CLI.
type Wire struct {
	Config    Config
	Catalog   *regions.Catalog
	Client    *districts.HTTPClient
	Districts domain.DistrictSource
	Messages  *console.Messages
	HTTP      *http.Client
	Log       *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}

	catalog, err := loadCatalog(cfg.Dataset)
	if err != nil {
		return nil, err
	}

	msgs, err := console.NewMessages(cfg.Language)
	if err != nil {
		return nil, err
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout, _ := cfg.APITimeout()
		httpClient = &http.Client{Timeout: timeout}
	}

	client := districts.NewHTTP(cfg.API.BaseURL, cfg.AppKey)
	client.Type = cfg.API.Type
	client.PageSize = cfg.API.PageSize
	client.MaxPages = cfg.API.MaxPages
	client.HTTP = httpClient

	return &Wire{
		Config:    cfg,
		Catalog:   catalog,
		Client:    client,
		Districts: districts.NewSource(client, log),
		Messages:  msgs,
		HTTP:      httpClient,
		Log:       log,
	}, nil
}

func loadCatalog(path string) (*regions.Catalog, error) {
	if path == "" {
		return regions.Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return regions.Load(f)
}

// SetAppKey updates the key used by the districts client.
func (w *Wire) SetAppKey(key string) {
	w.Config.AppKey = key
	w.Client.AppKey = key
}

// View returns a console view writing to out.
func (w *Wire) View(out io.Writer) *console.View {
	return console.NewView(out, w.Messages)
}

// Session builds an interactive explorer reading from in and writing to out.
func (w *Wire) Session(in *console.Input, out io.Writer, rng *rand.Rand) *navigator.Session {
	nav := navigator.New(w.Catalog, w.Districts, w.Config.Navigation.MaxDepth)
	return navigator.NewSession(nav, w.Catalog, w.View(out), in, rng, w.Log)
}

// NewRand returns a PCG source seeded with seed, or randomly seeded when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}
