package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-users-api/models"
)

// LoadSeedFile reads a JSON array of {"name","email"} objects.
func LoadSeedFile(path string) ([]models.SeedUser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}
	defer file.Close()

	var seeds []models.SeedUser
	if err := json.NewDecoder(file).Decode(&seeds); err != nil {
		return nil, fmt.Errorf("error decoding seed file: %w", err)
	}

	return seeds, nil
}

// Seed creates every seed user in order, so they get ids 1..n on an empty
// repository. Entries with an empty name or email are rejected before
// anything is written.
func Seed(ctx context.Context, repo UserRepository, seeds []models.SeedUser) error {
	for i, s := range seeds {
		if s.Name == "" || s.Email == "" {
			return fmt.Errorf("%w: entry %d needs name and email", ErrInvalidSeedData, i)
		}
	}

	for _, s := range seeds {
		if _, err := repo.CreateUser(ctx, models.User{Name: s.Name, Email: s.Email}); err != nil {
			return fmt.Errorf("error seeding user %q: %w", s.Email, err)
		}
	}

	return nil
}
