package cmd

import (
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/gsonntag/bruinbite/configs"
)

var rootCmd = &cobra.Command{
	Use:   "bruinbite",
	Short: "Dining hall review service",
	Long:  "API server and maintenance commands for the dining hall review service.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// setup loads config and brings the database up. Every subcommand starts
// here.
func setup() (*configs.Config, *time.Location) {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	if err := configs.SeedHalls(); err != nil {
		log.Fatalf("seeding halls: %v", err)
	}

	tz, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Printf("unknown timezone %q, falling back to UTC", cfg.Timezone)
		tz = time.UTC
	}
	return cfg, tz
}
