package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/Modern-Society-Labs/lcore-sdk/internal/attestor"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/domain"
	identitysvc "github.com/Modern-Society-Labs/lcore-sdk/internal/services/identity"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/store"
	"github.com/Modern-Society-Labs/lcore-sdk/internal/util/logredact"
)

// Wire bundles the store, services, and clients for the CLI.
type Wire struct {
	Store      domain.RecordStore
	Identities *identitysvc.Service
	Attestor   *attestor.Client
	Logger     *slog.Logger
	HTTP       *http.Client
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	var recordStore *store.RecordFileStore
	if cfg.Passphrase != "" {
		recordStore = store.NewEncryptedRecordFileStore(cfg.DeviceFile, cfg.Passphrase)
	} else {
		recordStore = store.NewRecordFileStore(cfg.DeviceFile)
	}

	httpClient := http.DefaultClient
	client := attestor.New(cfg.AttestorURL, httpClient)

	logger := slog.New(logredact.Wrap(slog.NewJSONHandler(os.Stderr, nil)))

	return &Wire{
		Store:      recordStore,
		Identities: identitysvc.NewService(recordStore),
		Attestor:   client,
		Logger:     logger,
		HTTP:       httpClient,
	}, nil
}
