package main

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/santaluzia/hospital-booking/internal/identity"
)

// Generates a demo accounts file the api-server can load via ACCOUNTS_FILE,
// so the mock directory has more than the two built-in identities.
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	path := os.Getenv("ACCOUNTS_FILE")
	if path == "" {
		path = "accounts.json"
	}

	count := 50
	if v := os.Getenv("SEED_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			log.Fatalf("invalid SEED_COUNT %q", v)
		}
		count = n
	}

	gofakeit.Seed(time.Now().UnixNano())

	accounts := make([]identity.Identity, 0, count)
	seen := map[string]bool{}

	for len(accounts) < count {
		email := gofakeit.Email()
		if seen[email] {
			continue
		}
		seen[email] = true

		birth := gofakeit.DateRange(
			time.Date(1955, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		)

		accounts = append(accounts, identity.Identity{
			ID:         uuid.New(),
			Name:       gofakeit.Name(),
			Email:      email,
			Role:       identity.RolePatient,
			Phone:      gofakeit.Numerify("(41) 9####-####"),
			NationalID: gofakeit.Numerify("###.###.###-##"),
			BirthDate:  birth.Format("2006-01-02"),
			Address:    gofakeit.Street() + ", " + gofakeit.StreetNumber() + " - Curitiba, PR",
			CreatedAt:  time.Now(),
		})
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		log.Fatalf("marshal accounts: %v", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", path, err)
	}

	log.Printf("seeded %d accounts into %s", count, path)
}
