package main

import (
	"fmt"

	"ai-memoire-be/internal/constant"
	"ai-memoire-be/pkg/memoire"
	"ai-memoire-be/pkg/memoire/classifier"

	"github.com/fatih/color"
)

// Offline walkthrough of the lexical pipeline: runs the intent,
// section and theme classifiers over the example prompts without
// touching any backend. Useful to sanity-check pattern changes.
func main() {
	title := color.New(color.FgCyan, color.Bold)
	chatTag := color.New(color.FgYellow)
	docTag := color.New(color.FgGreen)

	title.Println("=== Simulation du pipeline lexical ===")
	fmt.Println()

	for i, prompt := range constant.ExamplePrompts {
		fmt.Printf("%d) %s\n", i+1, prompt)

		intent := classifier.ClassifyIntent(prompt)
		if intent == classifier.IntentChat {
			chatTag.Println("   intent  : chat")
			fmt.Println()
			continue
		}
		docTag.Println("   intent  : document")

		section := classifier.DetectSection(prompt)
		fmt.Printf("   section : %s\n", memoire.Label(section))
		fmt.Printf("   thème   : %s\n", classifier.ExtractTheme(prompt))
		if next, ok := memoire.Next(section); ok {
			fmt.Printf("   suivant : %s\n", memoire.Label(next))
		}
		fmt.Println()
	}
}
