package server

import (
	"fmt"

	"github.com/pixeldrop/pixeldrop/internal/upload"
)

const (
	DefaultAddr       = ":3001"
	DefaultUploadsDir = "uploads"
	DefaultPublicPath = "/uploads"
	DefaultIndexFile  = "web/index.html"
)

type Config struct {
	HTTP    HTTPConfig
	Uploads UploadsConfig
	Web     WebConfig
}

type HTTPConfig struct {
	Addr     string
	CertFile string
	KeyFile  string
}

type UploadsConfig struct {
	// Dir is the on-disk upload directory, created at startup if absent.
	Dir string
	// PublicPath is the URL prefix the directory is served under.
	PublicPath string
	// MaxFileSize is the per-file streaming cutoff in bytes.
	MaxFileSize int64
}

type WebConfig struct {
	// IndexFile is the static start page served at "/".
	IndexFile string
}

func (c *Config) Validate() error {
	if c.HTTP.Addr == "" {
		return fmt.Errorf("http addr is required")
	}
	if c.Uploads.Dir == "" {
		return fmt.Errorf("uploads dir is required")
	}
	if c.Uploads.PublicPath == "" {
		c.Uploads.PublicPath = DefaultPublicPath
	}
	if c.Uploads.MaxFileSize <= 0 {
		c.Uploads.MaxFileSize = upload.DefaultMaxFileSize
	}
	if c.Web.IndexFile == "" {
		c.Web.IndexFile = DefaultIndexFile
	}
	return nil
}
