package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.KDF, logger *logger.Logger) *Services {
	keyChain := crypto.NewKeyChainServiceWithParams(cfg.Params())
	cipher := crypto.NewFieldCipher()

	return &Services{
		AuthService: NewAuthService(storages.MasterCredentialStore, storages.VaultEntryRepository, keyChain, cipher, logger),
	}
}
