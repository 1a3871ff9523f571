package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/snaprect/internal/calc"
	"github.com/1broseidon/snaprect/internal/snapareas"
)

func printAreasUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: snaprect areas <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list     Show every zone's configuration")
	fmt.Fprintln(w, "  set      Configure a zone (single action or compound area)")
	fmt.Fprintln(w, "  clear    Revert a zone to its built-in default")
}

func runAreas(args []string) int {
	if len(args) == 0 {
		printAreasUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "list":
		return runAreasList(args[1:])
	case "set":
		return runAreasSet(args[1:])
	case "clear":
		return runAreasClear(args[1:])
	case "help", "-h", "--help":
		printAreasUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown areas command: %s\n\n", args[0])
		printAreasUsage(os.Stderr)
		return 2
	}
}

func parseOrientationFlag(s string) (snapareas.Orientation, error) {
	switch s {
	case "", "landscape":
		return snapareas.Landscape, nil
	case "portrait":
		return snapareas.Portrait, nil
	default:
		return "", fmt.Errorf("unknown orientation %q; use landscape or portrait", s)
	}
}

func parseZoneFlag(s string) (snapareas.Zone, error) {
	for _, z := range snapareas.Zones {
		if s == string(z) {
			return z, nil
		}
	}
	return "", fmt.Errorf("unknown zone %q", s)
}

func runAreasList(args []string) int {
	fs := flag.NewFlagSet("areas list", flag.ExitOnError)
	orientation := fs.String("orientation", "landscape", "landscape or portrait")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	o, err := parseOrientationFlag(*orientation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	model := openModel()
	for _, zone := range snapareas.Zones {
		fmt.Printf("%-13s %s\n", zone, model.Resolve(o, zone))
	}
	return 0
}

func runAreasSet(args []string) int {
	fs := flag.NewFlagSet("areas set", flag.ExitOnError)
	orientation := fs.String("orientation", "landscape", "landscape or portrait")
	zone := fs.String("zone", "", "zone to configure")
	action := fs.String("action", "", "single action the zone should trigger")
	compound := fs.String("compound", "", "compound snap area the zone should offer")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	o, err := parseOrientationFlag(*orientation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	z, err := parseZoneFlag(*zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	var cfg snapareas.SnapAreaConfig
	switch {
	case *action != "" && *compound != "":
		fmt.Fprintln(os.Stderr, "-action and -compound are mutually exclusive")
		return 2
	case *action != "":
		cfg = snapareas.Single(calc.WindowAction(*action))
	case *compound != "":
		cfg = snapareas.Compound(snapareas.CompoundID(*compound))
	default:
		fmt.Fprintln(os.Stderr, "one of -action or -compound is required")
		return 2
	}

	model := openModel()
	model.SetConfig(o, z, cfg)
	fmt.Printf("%s %s -> %s\n", o, z, model.Resolve(o, z))
	return 0
}

func runAreasClear(args []string) int {
	fs := flag.NewFlagSet("areas clear", flag.ExitOnError)
	orientation := fs.String("orientation", "landscape", "landscape or portrait")
	zone := fs.String("zone", "", "zone to revert to its default")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	o, err := parseOrientationFlag(*orientation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	z, err := parseZoneFlag(*zone)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	model := openModel()
	model.SetConfig(o, z, snapareas.Unconfigured())
	fmt.Printf("%s %s -> %s (default)\n", o, z, model.Resolve(o, z))
	return 0
}

func runMigrate(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: snaprect migrate")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Fold legacy settings (sixths toggle, ignored-zones bitmask) into")
		fmt.Fprintln(os.Stdout, "the per-zone snap area tables. Runs at most once.")
		return 0
	}
	if len(args) > 0 {
		fmt.Fprintln(os.Stderr, "migrate takes no arguments")
		return 2
	}

	model := openModel()
	if model.Migrate() {
		fmt.Println("Legacy settings migrated.")
	} else {
		fmt.Println("Nothing to migrate.")
	}
	return 0
}
