package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kg-3rd/grand-adventure-hub/internal/client"
)

var (
	serverURL string
	email     string
	password  string
	token     string

	api *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Admin CLI for the adventure hub backend",
	Long:  "Manage gallery and poster media ordering, uploads, and review moderation against a running API server",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8080", "API server base URL")
	rootCmd.PersistentFlags().StringVar(&email, "email", os.Getenv("GRANDHUB_ADMIN_EMAIL"), "admin email for login")
	rootCmd.PersistentFlags().StringVar(&password, "password", os.Getenv("GRANDHUB_ADMIN_PASSWORD"), "admin password for login")
	rootCmd.PersistentFlags().StringVar(&token, "token", os.Getenv("GRANDHUB_ADMIN_TOKEN"), "access token, skips login when set")

	cobra.OnInitialize(initClient)

	rootCmd.AddCommand(mediaCmd)
	rootCmd.AddCommand(reviewsCmd)
}

func initClient() {
	api = client.New(serverURL)
	if token != "" {
		api.SetToken(token)
		return
	}
	if email == "" || password == "" {
		return
	}
	if err := api.Login(context.Background(), email, password); err != nil {
		fmt.Printf("Login failed: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
