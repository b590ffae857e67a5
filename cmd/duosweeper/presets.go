package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets from the active configuration.
Presets can be changed or added in the config file (see 'duosweeper config').`,
	Run: runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	e, err := loadEnv(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	presets := e.cfg.Difficulties()
	fmt.Printf("Difficulty presets (config: %s):\n\n", e.cfg.Source)

	// Print header
	fmt.Printf("  %-8s  %-5s  %-5s  %-3s  %-3s  %-5s  %-5s  %s\n",
		"Name", "Board", "Mines", "?", "!", "Lives", "Power", "Surprise")
	fmt.Printf("  %-8s  %-5s  %-5s  %-3s  %-3s  %-5s  %-5s  %s\n",
		"----", "-----", "-----", "-", "-", "-----", "-----", "--------")

	for _, d := range presets {
		fmt.Printf("  %-8s  %-5s  %-5d  %-3d  %-3d  %-5d  %-5d  %d\n",
			d.Name, fmt.Sprintf("%dx%d", d.Rows, d.Cols), d.MineCount,
			d.QuestionCount, d.SurpriseCount, d.StartingLives, d.PowerCost, d.SurprisePoints)
	}

	fmt.Println()
	fmt.Println("Run 'duosweeper play <name>' to start a match.")
}
