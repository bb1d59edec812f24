package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pixeldrop/pixeldrop/internal/server"
	"github.com/pixeldrop/pixeldrop/internal/upload"
	"github.com/pixeldrop/pixeldrop/internal/version"
)

var rootCmd = &cobra.Command{
	Use:     "pixeldrop",
	Short:   "PixelDrop image upload server",
	Version: version.Detailed(),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		cmd.SilenceUsage = true

		s, err := server.New(config)
		if err != nil {
			return err
		}

		defer slog.Info("Bye!")
		return s.Start(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().SortFlags = false
	rootCmd.Flags().StringP("bind", "b", server.DefaultAddr, "Address to bind the server")
	rootCmd.Flags().StringP("dir", "d", server.DefaultUploadsDir, "Upload directory")
	rootCmd.Flags().String("index", server.DefaultIndexFile, "Static index page")
	rootCmd.Flags().String("cert", "", "Path to the certificate file")
	rootCmd.Flags().String("key", "", "Path to the key file")
}

// loadConfig resolves the server config from flags and PIXELDROP_* env vars.
// A plain PORT env var is honored for the listen port.
func loadConfig(cmd *cobra.Command) (*server.Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", server.DefaultAddr)
	v.SetDefault("uploads.dir", server.DefaultUploadsDir)
	v.SetDefault("uploads.public_path", server.DefaultPublicPath)
	v.SetDefault("uploads.max_file_size", int64(upload.DefaultMaxFileSize))
	v.SetDefault("web.index_file", server.DefaultIndexFile)

	v.BindPFlag("http.addr", cmd.Flags().Lookup("bind"))
	v.BindPFlag("http.cert_file", cmd.Flags().Lookup("cert"))
	v.BindPFlag("http.key_file", cmd.Flags().Lookup("key"))
	v.BindPFlag("uploads.dir", cmd.Flags().Lookup("dir"))
	v.BindPFlag("web.index_file", cmd.Flags().Lookup("index"))

	v.SetEnvPrefix("PIXELDROP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	config := &server.Config{
		HTTP: server.HTTPConfig{
			Addr:     v.GetString("http.addr"),
			CertFile: v.GetString("http.cert_file"),
			KeyFile:  v.GetString("http.key_file"),
		},
		Uploads: server.UploadsConfig{
			Dir:         v.GetString("uploads.dir"),
			PublicPath:  v.GetString("uploads.public_path"),
			MaxFileSize: v.GetInt64("uploads.max_file_size"),
		},
		Web: server.WebConfig{
			IndexFile: v.GetString("web.index_file"),
		},
	}

	// PORT wins over the bind flag default, like most PaaS runtimes expect.
	if port := os.Getenv("PORT"); port != "" && !cmd.Flags().Changed("bind") {
		config.HTTP.Addr = ":" + port
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
	}

	handler := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
		NoColor:    !isatty.IsTerminal(os.Stdout.Fd()),
	})
	slog.SetDefault(slog.New(handler))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
