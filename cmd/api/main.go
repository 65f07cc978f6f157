package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/taskify/core/cmd/api/commands"
)

// @title Taskify API
// @version 1.0
// @description Personal projects, tasks, events and notes. REST for CRUD, GraphQL at /graphql.

// @contact.name Taskify
// @contact.url https://github.com/taskify/core

// @license.name MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey CookieAuth
// @in header
// @name token
// @description Session cookie set on sign-in; browsers send it automatically.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

func main() {
	rootCmd := &cobra.Command{
		Use:   "taskify",
		Short: "Taskify API server",
		Long:  `Taskify keeps a user's projects, tasks, calendar events and notes behind a REST and GraphQL API.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
