package main

import (
	"log"
	"time"

	"pieforproviders/app/config"
	"pieforproviders/app/database"
	"pieforproviders/app/seed"

	"github.com/spf13/cobra"
)

var (
	weekendPercent float64
	skipWeekends   bool
	randSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	Long: `Seeds the database with a demo provider, children, sites, case cycles
and attendance records. Safe to run repeatedly: every entity is created
find-or-create by its natural key. Never run against production data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadEnv()
		config.InitDB()
		db := config.GetDB()
		defer db.Close()

		if err := database.RunMigrations(db); err != nil {
			return err
		}

		opts := seed.DefaultOptions()
		opts.PercentOnWeekends = weekendPercent
		opts.SkipAllWeekends = skipWeekends
		if randSeed != 0 {
			opts.RandSeed = randSeed
		}
		return seed.Run(db, opts)
	},
}

func init() {
	rootCmd.Flags().Float64Var(&weekendPercent, "weekend-percent", 0.10,
		"probability that any given weekend day is attended")
	rootCmd.Flags().BoolVar(&skipWeekends, "skip-weekends", false,
		"never generate weekend attendance, regardless of --weekend-percent")
	rootCmd.Flags().Int64Var(&randSeed, "seed", 0,
		"random seed for reproducible runs (0 uses the current time)")
}

func main() {
	start := time.Now()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Printf("seeding took %s", time.Since(start).Round(time.Millisecond))
}
