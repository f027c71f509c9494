package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"go-lifeline/alert"
	"go-lifeline/config"
	"go-lifeline/facilities"
	"go-lifeline/geocode"
	"go-lifeline/pipeline"
	"go-lifeline/routes"
	"go-lifeline/routing"
)

func main() {
	// Load .env file, tolerating its absence in deployed environments.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg := config.Load()

	// Print and check env
	if cfg.ORSAPIKey != "" {
		fmt.Println("ORS_API_KEY loaded")
	} else {
		fmt.Println("ORS_API_KEY missing: route queries will fail until it is set")
	}
	if cfg.TelephonyConfigured() {
		fmt.Println("Telephony credentials loaded")
	} else {
		fmt.Println("Telephony credentials incomplete: alert calls will be skipped")
	}

	runner := pipeline.NewRunner(
		geocode.NewClient(cfg.NominatimURL),
		facilities.NewLocator(facilities.NewOverpassClient(cfg.OverpassURL)),
		routing.NewClient(cfg.ORSURL, cfg.ORSAPIKey),
		alert.NewDispatcher(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber, cfg.RecipientNumber),
	)

	r := routes.SetupRouter(runner)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
