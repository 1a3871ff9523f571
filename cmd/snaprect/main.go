package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/config"
	"github.com/1broseidon/snaprect/internal/snapareas"
	"github.com/1broseidon/snaprect/internal/store"
	"github.com/1broseidon/snaprect/internal/x11"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "calc":
		os.Exit(runCalc(os.Args[2:]))
	case "areas":
		os.Exit(runAreas(os.Args[2:]))
	case "migrate":
		os.Exit(runMigrate(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snaprect <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  calc                Calculate a window placement rectangle")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  areas list          List snap area configuration")
	fmt.Fprintln(w, "  areas set           Configure a snap zone")
	fmt.Fprintln(w, "  areas clear         Revert a snap zone to its default")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  migrate             Migrate legacy settings into snap areas")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  help                Show this help")
}

// loadSettings reads the engine settings file from the standard location.
func loadSettings() calc.CalculationSettings {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg.CalculationSettings()
}

// openModel opens the persisted settings store and wires the snap-area
// model over it. The display query degrades to "no portrait display"
// when no X server is reachable.
func openModel() *snapareas.Model {
	path, err := store.DefaultPath()
	if err != nil {
		log.Fatalf("Failed to resolve settings path: %v", err)
	}
	st, err := store.Open(path)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}

	var displays snapareas.DisplayQuery
	if conn, err := x11.NewConnection(); err == nil {
		displays = conn
	}
	return snapareas.NewModel(st, displays)
}
