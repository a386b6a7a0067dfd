// Package main is the entry point for the game API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mazmorra",
	Short: "Grid-based RPG API server",
	Long:  `Mazmorra serves a procedurally generated dungeon over HTTP: players, rooms, and a turn-based combat resolver.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
