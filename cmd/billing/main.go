package main

import (
	"fmt"
	"os"

	"billing_scheduler/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Billing Scheduler API
// @version         1.0
// @description     Invoices and the recurring billing cycle, backed by DynamoDB.

// @BasePath  /

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
