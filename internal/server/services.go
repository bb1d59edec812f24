package server

import (
	"github.com/pixeldrop/pixeldrop/internal/server/pages"
	"github.com/pixeldrop/pixeldrop/internal/upload"
	"github.com/pixeldrop/pixeldrop/internal/upload/store"
)

type Services struct {
	Uploads *store.Store
	Pages   *pages.Pages
	Policy  *upload.Policy
}

func NewServices(config *Config) (*Services, error) {
	uploads, err := store.New(config.Uploads.Dir, config.Uploads.PublicPath)
	if err != nil {
		return nil, err
	}

	policy := upload.DefaultPolicy()
	policy.MaxFileSize = config.Uploads.MaxFileSize

	return &Services{
		Uploads: uploads,
		Pages:   pages.New(config.Web.IndexFile),
		Policy:  policy,
	}, nil
}
