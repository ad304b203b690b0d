package main

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/coffai/pos/internal/seed"
)

// Writes the built-in catalog to a JSON file so operators can edit menu
// options and discount rules before pointing CATALOG_SEED_PATH at it.
func main() {
	out := flag.String("out", "catalog.json", "path to write the catalog seed file")
	force := flag.Bool("force", false, "overwrite the output file if it exists")
	flag.Parse()

	if !*force {
		if _, err := os.Stat(*out); err == nil {
			log.Fatalf("%s already exists, use -force to overwrite", *out)
		}
	}

	data, err := json.MarshalIndent(seed.Default(), "", "  ")
	if err != nil {
		log.Fatalf("encode catalog: %v", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.Printf("catalog seed written to %s", *out)
}
