// scripts/seed.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Vuongmtien/final-test-fullstack-BE/config"
	"github.com/Vuongmtien/final-test-fullstack-BE/database"
	"github.com/Vuongmtien/final-test-fullstack-BE/models"
	"github.com/Vuongmtien/final-test-fullstack-BE/roster"
)

// seedFile mirrors the mock-data dump: positions first, then teachers in
// the same payload shape the create endpoint accepts.
type seedFile struct {
	Positions []models.TeacherPosition `json:"positions"`
	Teachers  []roster.TeacherPayload  `json:"teachers"`
}

func main() {
	path := flag.String("file", "seed.json", "path to the seed data file")
	flag.Parse()

	cfg := config.Load()
	database.Connect(cfg)

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}
	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Fatalf("failed to parse seed file: %v", err)
	}

	// Wipe old data, links first.
	for _, model := range []any{
		&models.TeacherPositionLink{},
		&models.Teacher{},
		&models.User{},
		&models.TeacherPosition{},
	} {
		if err := database.DB.Where("1 = 1").Delete(model).Error; err != nil {
			log.Fatalf("failed to wipe table: %v", err)
		}
	}

	positions := roster.NewPositionStore(database.DB)
	inserted := 0
	for i := range data.Positions {
		p := data.Positions[i]
		p.ID = 0
		if err := positions.Create(&p); err != nil {
			log.Printf("position %q skipped: %v", p.Code, err)
			continue
		}
		inserted++
	}
	fmt.Printf("positions: %d inserted, %d skipped\n", inserted, len(data.Positions)-inserted)

	r := roster.New(database.DB)
	inserted = 0
	for i := range data.Teachers {
		if _, err := r.Create(&data.Teachers[i]); err != nil {
			log.Printf("teacher %q skipped: %v", data.Teachers[i].Email, err)
			continue
		}
		inserted++
	}
	fmt.Printf("teachers: %d inserted, %d skipped\n", inserted, len(data.Teachers)-inserted)
	fmt.Println("seed completed")
}
