package main

import (
	"flag"
	"log"

	"mycolog/config"
	"mycolog/database"
)

func main() {
	reset := flag.Bool("reset", false, "clear existing data before seeding")
	flag.Parse()

	cfg := config.Load()
	db := database.OpenSQLite(cfg.DBPath)

	if err := database.Seed(db, *reset); err != nil {
		log.Fatalf("seed: %v", err)
	}
	log.Printf("[seed] done")
}
