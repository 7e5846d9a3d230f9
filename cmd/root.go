package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bigocheck/internal/analyzer"
	"bigocheck/internal/config"
	"bigocheck/internal/lang"
	"bigocheck/internal/models"
	"bigocheck/internal/watcher"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	langFlag           string
	formatFlag         string
	watchFlag          bool
	lexicalFlag        bool
	configFlag         string
	outputFlag         string
	generateConfigFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bigocheck [snippet files]",
	Short: "Estimate the Big-O time complexity of source snippets",
	Long: `bigocheck estimates the asymptotic time complexity of source snippets
using structural pattern matching, and explains each estimate with a
rationale trail. Snippets are parsed with tree-sitter when possible and
re-analyzed lexically when parsing fails.

Examples:
  bigocheck --lang=python algo.py           # Analyze a snippet file
  cat snippet.c | bigocheck --lang=c        # Analyze stdin
  bigocheck --format=json --lang=java A.java
  bigocheck --watch --lang=python algo.py   # Re-analyze on change
  bigocheck --generate-config               # Generate sample config file`,
	Run: runAnalysis,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&langFlag, "lang", "l", "", "Language tag ("+supportedTags()+")")
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (console, json)")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch snippet files and re-analyze on change")
	rootCmd.Flags().BoolVar(&lexicalFlag, "lexical", false, "Skip the tree-sitter path, use lexical analysis only")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to a file")
	rootCmd.Flags().BoolVar(&generateConfigFlag, "generate-config", false, "Generate sample configuration file")
}

func runAnalysis(cmd *cobra.Command, args []string) {
	if generateConfigFlag {
		generateConfig()
		return
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		color.Red("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if outputFlag != "" {
		cfg.Output.OutputFile = outputFlag
	}
	if lexicalFlag {
		cfg.Analysis.Structural = false
	}

	tag := cfg.Analysis.DefaultLanguage
	if langFlag != "" {
		tag = langFlag
	}

	engine := analyzer.NewEngine()
	reportGen := analyzer.NewReportGeneratorWithConfig(cfg)

	if len(args) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			color.Red("Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		result := analyze(engine, cfg, string(source), tag)
		emit(cfg, reportGen.Generate("stdin", result))
		return
	}

	analyzeFiles := func(paths []string) error {
		var out strings.Builder
		for _, path := range paths {
			source, err := readSnippet(path, cfg)
			if err != nil {
				color.Red("Error reading %s: %v\n", path, err)
				continue
			}
			result := analyze(engine, cfg, source, tag)
			out.WriteString(reportGen.Generate(filepath.Base(path), result))
		}
		emit(cfg, out.String())
		return nil
	}

	if err := analyzeFiles(args); err != nil {
		color.Red("Analysis failed: %v\n", err)
		return
	}

	if watchFlag {
		fw, err := watcher.NewFileWatcher(cfg)
		if err != nil {
			color.Red("Failed to start watch mode: %v\n", err)
			os.Exit(1)
		}
		defer fw.Close()

		if err := fw.Watch(args, func(changed []string) error {
			color.Cyan("🔄 Change detected, re-analyzing...\n")
			return analyzeFiles(changed)
		}); err != nil {
			color.Red("Failed to watch files: %v\n", err)
			os.Exit(1)
		}

		color.Cyan("👀 Watching %d file(s), press Ctrl+C to stop\n", len(args))
		select {}
	}
}

func analyze(engine *analyzer.Engine, cfg *config.Config, source, tag string) *models.AnalysisResult {
	if cfg.Analysis.Structural {
		return engine.AnalyzeStructural(context.Background(), source, tag)
	}
	return engine.Analyze(source, tag)
}

func readSnippet(path string, cfg *config.Config) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.Size() > int64(cfg.Limits.MaxSnippetSize)*1024 {
		return "", fmt.Errorf("snippet exceeds %d KB limit", cfg.Limits.MaxSnippetSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func emit(cfg *config.Config, report string) {
	if cfg.Output.OutputFile != "" {
		if err := writeReportToFile(report, cfg.Output.OutputFile); err != nil {
			color.Red("Failed to write report to file: %v\n", err)
		} else {
			color.Green("📄 Report saved to: %s\n", cfg.Output.OutputFile)
		}
		return
	}
	fmt.Print(report)
}

func writeReportToFile(report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(report), 0644)
}

func generateConfig() {
	configPath := ".bigocheck.yml"
	if err := config.GenerateConfig(configPath); err != nil {
		color.Red("Failed to generate config file: %v\n", err)
		os.Exit(1)
	}
	color.Green("✅ Generated sample configuration file: %s\n", configPath)
	color.Cyan("📝 Edit this file to customize bigocheck behavior\n")
	color.Cyan("🚀 Run 'bigocheck --config=%s <file>' to use it\n", configPath)
}

func supportedTags() string {
	return strings.Join(lang.Tags(), ", ")
}
