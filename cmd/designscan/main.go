package main

import (
	"fmt"
	"os"

	designscan "github.com/hellenic-development/designscan"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	htmlPath   string
	cssPath    string
	outputFile string
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "designscan <url>",
		Short: "Extract a design system summary from web page content",
		Long:  "A tool to extract colors, fonts, spacing, and component occurrences from the raw HTML/CSS of a single web page. Content is never fetched; supply it as local files.",
		Args:  cobra.ArbitraryArgs,
		Run:   run,
	}

	rootCmd.Flags().StringVar(&htmlPath, "html", "", "Local file with already-fetched HTML content")
	rootCmd.Flags().StringVar(&cssPath, "css", "", "Local file with already-fetched CSS content")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	rootCmd.Flags().StringVarP(&format, "format", "f", designscan.FormatJSON, "Report format: json or markdown")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("designscan version %s\n", designscan.Version)
		},
	}

	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("Usage: designscan <url>")
		fmt.Println("\nExample:")
		fmt.Println("  designscan https://example.com")
		os.Exit(1)
	}

	url := args[0]

	if htmlPath == "" && cssPath == "" {
		runDemo(url)
		return
	}

	runAnalysis(url)
}

// runDemo prints a fixed illustrative report. It stands in for an external
// fetch+render capability that is out of scope and is deliberately not
// derived from the supplied URL's actual content.
func runDemo(url string) {
	fmt.Printf("Analyzing website: %s\n", url)
	fmt.Println("\nNote: This tool does not fetch live content.")
	fmt.Println("Supply already-fetched files via --html and --css for a real analysis.")
	fmt.Println()

	fmt.Println(designscan.ExampleReport(url))
	fmt.Println("\n✅ Analysis complete")
}

func runAnalysis(url string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Design System Scanner")
	cyan.Println("========================")
	cyan.Println()

	result, err := designscan.Run(designscan.Options{
		URL:      url,
		HTMLPath: htmlPath,
		CSSPath:  cssPath,
		Format:   format,
		Logger:   &cliLogger{},
	})
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	report := result.Report
	cyan.Println("\n📊 Extraction Summary:")
	fmt.Printf("  • Domain: %s\n", report.Domain)

	if report.Colors != nil {
		fmt.Printf("  • Colors: %d hex, %d rgb, %d rgba\n",
			len(report.Colors.Hex),
			len(report.Colors.RGB),
			len(report.Colors.RGBA))
	}
	if report.Typography != nil {
		fmt.Printf("  • Font Stacks: %d\n", len(report.Typography.Fonts))
	}
	if report.Spacing != nil {
		fmt.Printf("  • Spacing Values: %d margins, %d paddings\n",
			len(report.Spacing.Margins),
			len(report.Spacing.Paddings))
	}
	if report.Components != nil {
		fmt.Printf("  • Components: %d button samples, %d forms, %d navs, %d heading levels\n",
			len(report.Components.Buttons),
			report.Components.Forms,
			report.Components.Navigation,
			len(report.Components.Headings))
	}

	if outputFile == "" {
		fmt.Println()
		fmt.Println(result.Output)
		return
	}

	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, []byte(result.Output), 0644); err != nil {
		red.Printf("✗\n")
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully extracted design system summary to %s\n\n", outputFile)
}

// cliLogger implements designscan.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
