package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/wirasentana/aba-export-service/internal/config"
	"github.com/wirasentana/aba-export-service/internal/domain"
	"github.com/wirasentana/aba-export-service/internal/report"
	"github.com/wirasentana/aba-export-service/internal/repository"
	"github.com/wirasentana/aba-export-service/internal/service"
)

const dateFormat = "2006-01-02"

type exportOutcome struct {
	input   string
	summary domain.ExportSummary
	err     error
}

func main() {
	// Command-line flags
	var (
		inputFiles  string
		profileFile string
		outputFile  string
		outputDir   string
		dateStr     string
		showSummary bool
		prettyPrint bool
		verbose     bool
	)

	flag.StringVar(&inputFiles, "input", "", "Comma-separated paths to instruction files (.csv or .xlsx)")
	flag.StringVar(&profileFile, "profile", "profile.yaml", "Path to the originator profile YAML")
	flag.StringVar(&outputFile, "output", "", "Path to the output file (single input only; default: input name with .aba)")
	flag.StringVar(&outputDir, "output-dir", ".", "Directory for output files")
	flag.StringVar(&dateStr, "date", "", "Processing date (YYYY-MM-DD, default today)")
	flag.BoolVar(&showSummary, "summary", false, "Print a JSON run summary per input")
	flag.BoolVar(&prettyPrint, "pretty", true, "Pretty print JSON summaries")
	flag.BoolVar(&verbose, "verbose", false, "Log skipped rows and progress")

	flag.Parse()

	// Validate required flags
	if inputFiles == "" {
		exitWithError("At least one instruction file path is required")
	}

	var inputs []string
	for _, input := range strings.Split(inputFiles, ",") {
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		inputs = append(inputs, input)
	}

	if len(inputs) == 0 {
		exitWithError("No valid instruction file paths provided")
	}
	if outputFile != "" && len(inputs) > 1 {
		exitWithError("The -output flag takes a single input; use -output-dir for several")
	}

	processingDate := time.Now()
	if dateStr != "" {
		var err error
		processingDate, err = time.Parse(dateFormat, dateStr)
		if err != nil {
			exitWithError(fmt.Sprintf("Invalid processing date format: %v", err))
		}
	}

	originator, err := config.LoadProfile(profileFile)
	if err != nil {
		exitWithError(fmt.Sprintf("Loading originator profile: %v", err))
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			exitWithError(fmt.Sprintf("Building logger: %v", err))
		}
	}
	defer logger.Sync()

	// Inputs convert independently of each other, so they run concurrently.
	outcomes := make([]exportOutcome, len(inputs))
	var wg sync.WaitGroup
	for i, input := range inputs {
		wg.Add(1)
		go func(i int, input string) {
			defer wg.Done()
			outcomes[i] = runExport(input, outputPath(input, outputFile, outputDir), originator, processingDate, logger)
		}(i, input)
	}
	wg.Wait()

	formatter := report.NewJSONFormatter(prettyPrint)

	failed := false
	for _, outcome := range outcomes {
		if outcome.err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", outcome.input, outcome.err)
			continue
		}

		if showSummary {
			out, err := formatter.Format(outcome.summary)
			if err != nil {
				exitWithError(fmt.Sprintf("Failed to format summary: %v", err))
			}
			fmt.Println(string(out))
		}
	}

	if failed {
		os.Exit(1)
	}
}

// runExport converts one instruction file into one direct-entry file
func runExport(input, output string, originator domain.Originator, processingDate time.Time, logger *zap.Logger) exportOutcome {
	repo, err := repository.NewFileRepository(input)
	if err != nil {
		return exportOutcome{input: input, err: err}
	}

	result, err := service.NewExportService(repo, originator, logger).Export(processingDate)
	if err != nil {
		return exportOutcome{input: input, err: err}
	}

	if err := os.WriteFile(output, []byte(result.Document.String()), 0644); err != nil {
		return exportOutcome{input: input, err: fmt.Errorf("writing output file: %w", err)}
	}

	return exportOutcome{input: input, summary: result.Summary}
}

// outputPath decides where the document for input lands
func outputPath(input, outputFile, outputDir string) string {
	if outputFile != "" {
		return outputFile
	}

	base := filepath.Base(input)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".aba"
	return filepath.Join(outputDir, name)
}

func exitWithError(message string) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	fmt.Fprintf(os.Stderr, "Run with -h flag for usage information.\n")
	os.Exit(1)
}
