package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/kanbanboard/core/cmd/api/commands"
)

// @title Kanban Board API
// @version 0.1.0
// @description Kanban task tracking backend storing tasks as plain markdown files

// @contact.name Kanban Board
// @contact.url https://github.com/kanbanboard/core

// @host localhost:8000
// @BasePath /

func main() {
	rootCmd := &cobra.Command{
		Use:   "kanban-board",
		Short: "Kanban Board API Server",
		Long:  `Kanban Board is a task tracking backend that keeps every task as a markdown file with YAML frontmatter, organized into status directories.`,
	}

	// Add commands
	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
