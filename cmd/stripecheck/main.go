package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/stripeboard/stripeboard/app/models"
	"github.com/stripeboard/stripeboard/internal/pkg/config"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

// stripecheck verifies the Stripe credential and API connectivity without
// starting the dashboard. Run it once after configuring the environment.
func main() {
	fmt.Println("Testing Stripe API connection...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Stripe.ValidateCredential(); err != nil {
		switch {
		case errors.Is(err, config.ErrCredentialMissing):
			fmt.Fprintln(os.Stderr, "ERROR: no STRIPE_SECRET_KEY found in the environment.")
			fmt.Fprintln(os.Stderr, "Create a .env file containing:")
			fmt.Fprintln(os.Stderr, "  STRIPE_SECRET_KEY=sk_test_your_key_here")
		default:
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	if cfg.Stripe.LiveMode() {
		fmt.Println("WARNING: using a LIVE mode API key, real charges are possible")
	} else {
		fmt.Println("Using TEST mode API key")
	}

	client, err := stripe.NewClient(cfg.Stripe)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to construct Stripe client: %v\n", err)
		os.Exit(1)
	}

	account, err := client.GetAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "connection failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Successfully connected to Stripe!")
	fmt.Printf("  Account ID:       %s\n", account.ID)
	fmt.Printf("  Account Email:    %s\n", account.Email)
	fmt.Printf("  Country:          %s\n", account.Country)
	fmt.Printf("  Default Currency: %s\n", account.DefaultCurrency)

	products, err := client.ListProducts(3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "product listing failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d product(s)\n", len(products))
	for _, p := range products {
		fmt.Printf("  - %s (%s)\n", p.Name, p.ID)
	}
	if len(products) == 0 {
		fmt.Println("  No products found. Create some on the dashboard!")
	}

	intents, err := client.ListPaymentIntents(time.Time{}, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "payment intent listing failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d recent payment intent(s)\n", len(intents))
	for _, pi := range intents {
		fmt.Printf("  - %s: %s (%s)\n", pi.ID, models.FormatMinorAmount(pi.Amount, pi.Currency), pi.Status)
	}
	if len(intents) == 0 {
		fmt.Println("  No payment intents yet.")
	}

	fmt.Println("All checks passed.")
}
