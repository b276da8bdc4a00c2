// Command client checks a running users API: it reports the health endpoint
// and lists the stored users.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

func main() {
	log := logger.NewLogger("client")
	if err := logger.SetLevel("info"); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	cfg, err := config.GetClientAdapterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	api, err := adapter.NewHTTPUsersAPI(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating users API client")
	}

	ctx := context.Background()
	health, err := api.Health(ctx)
	if err != nil {
		log.Fatal().Err(err).Str("address", cfg.HTTPAddress).Msg("health check failed")
	}
	users, err := api.ListUsers(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("listing users failed")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err = enc.Encode(struct {
		Health any `json:"health"`
		Users  any `json:"users"`
	}{health, users}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
