package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"grocerysim/internal/game"
	"grocerysim/internal/world"
)

func main() {
	layoutPath := flag.String("layout", "assets/scenes/grocery.yaml", "scene layout file")
	flag.Parse()

	// Run from the executable's directory for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	layout, err := world.LoadLayout(*layoutPath)
	if os.IsNotExist(err) {
		fmt.Printf("Layout %s not found, using built-in scene\n", *layoutPath)
		layout, err = world.DefaultLayout(), nil
	}
	if err != nil {
		fmt.Printf("❌ Failed to load layout: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(layout)
	if err != nil {
		fmt.Printf("❌ Failed to build scene: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
