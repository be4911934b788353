// Command devtoken prints a bearer token for local testing.
//
//	go run ./cmd/devtoken -user 00000000-0000-0000-0000-000000000001
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	httpadapter "ad-exchange/internal/adapter/http"
	"ad-exchange/internal/adapter/memory"
	"ad-exchange/internal/config"
)

func main() {
	user := flag.String("user", memory.DemoViewerID, "user id to put in the token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	token, err := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.Issuer).Issue(*user, *ttl)
	if err != nil {
		slog.Error("failed to sign token", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(token)
}
