package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/1broseidon/snaprect/internal/calc"
)

func runCalc(args []string) int {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	action := fs.String("action", "", "window action to perform (e.g. left-half, maximize)")
	window := fs.String("window", "", "current window rectangle as x,y,w,h")
	frame := fs.String("frame", "", "visible screen frame as x,y,w,h")
	lastAction := fs.String("last-action", "", "previous action, enables cycling on repeats")
	lastCount := fs.Int("last-count", 1, "repeat counter recorded from the previous result")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: snaprect calc -action <name> -frame x,y,w,h [-window x,y,w,h] [-last-action <name> -last-count <n>]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *action == "" || *frame == "" {
		fs.Usage()
		return 2
	}

	frameRect, err := parseRect(*frame)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -frame: %v\n", err)
		return 2
	}

	params := calc.CalculationParams{
		VisibleFrame: frameRect,
		Action:       calc.WindowAction(*action),
		Settings:     loadSettings(),
	}
	if *window != "" {
		windowRect, err := parseRect(*window)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid -window: %v\n", err)
			return 2
		}
		params.Window = calc.WindowInfo{Rect: windowRect}
	}
	if *lastAction != "" {
		params.LastAction = &calc.LastActionInfo{
			Action: calc.WindowAction(*lastAction),
			Count:  *lastCount,
		}
	}

	engine := calc.NewEngine()
	res, err := engine.Calculate(params)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Printf("%d,%d,%d,%d\n", res.Rect.X, res.Rect.Y, res.Rect.Width, res.Rect.Height)
	if res.SubAction != calc.SubActionNone {
		fmt.Printf("sub-action: %s\n", res.SubAction)
	}
	return 0
}

// parseRect parses "x,y,w,h" into a Rect.
func parseRect(s string) (calc.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return calc.Rect{}, fmt.Errorf("expected x,y,w,h, got %q", s)
	}
	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return calc.Rect{}, fmt.Errorf("bad component %q: %w", part, err)
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return calc.Rect{}, fmt.Errorf("width and height must be positive, got %dx%d", vals[2], vals[3])
	}
	return calc.Rect{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}
