package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-magi/internal/resource"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "List the loaded textures and fonts",
	Long:  `Loads the built-in sprite sheet, verifies it and lists every texture and font.`,
	Args:  cobra.NoArgs,
	Run:   runAssets,
}

func runAssets(_ *cobra.Command, _ []string) {
	res, err := resource.LoadAll()
	if err != nil {
		logger.Fatal("cannot load resources", "error", err)
	}

	textures := res.Textures()

	maxNameLen := len("Name")
	for _, sp := range textures {
		if len(sp.Name) > maxNameLen {
			maxNameLen = len(sp.Name)
		}
	}

	fmt.Println("Textures:")
	fmt.Println()
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "Name", "Size", "Color")
	fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, "----", "----", "-----")
	for _, sp := range textures {
		fmt.Printf("  %-*s  %-9s  %s\n", maxNameLen, sp.Name, fmt.Sprintf("%dx%d", sp.W, sp.H), sp.Color)
	}

	fmt.Println()
	fmt.Println("Fonts:")
	fmt.Println()
	for _, name := range resource.FontNames {
		f, err := res.Font(name)
		if err != nil {
			logger.Fatal("cannot load font", "error", err)
		}
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, f.Color)
	}
}
