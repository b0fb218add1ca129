package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/toyz/doppel/internal/cli"
	"github.com/toyz/doppel/internal/utils"
	"github.com/toyz/doppel/pkg/doppel"
)

func main() {
	var (
		outputFlag  string
		configFlag  = flag.String("config", "", "Config file path (defaults to .doppel.yml when present)")
		accessFlag  = flag.String("access", "", "Access level of generated declarations: internal or public")
		cleanFlag   = flag.Bool("clean", false, "Delete previously generated doppel files from the inputs")
		listFlag    = flag.Bool("list", false, "Report the artifacts that would be written without writing them")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors")
		versionFlag = flag.Bool("version", false, "Print the doppel version and exit")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)
	flag.StringVar(&outputFlag, "o", "", "Output directory for generated artifacts")
	flag.StringVar(&outputFlag, "output", "", "Output directory for generated artifacts")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <inputs...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Doppel Test Double Generator\n")
		fmt.Fprintf(os.Stderr, "Scans Swift sources for doppel:: markers and generates spies, mocks, and factories.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  inputs             Swift files, directories, or dir/... patterns\n")
		fmt.Fprintf(os.Stderr, "                     Directories are scanned recursively for .swift files\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s Sources/...                        # Scan Sources recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s Sources/App/UserService.swift      # Process a single file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o Tests/Doubles Sources/...       # Write artifacts into one directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --access public Sources/...        # Generate public doubles\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --list Sources/...                 # Dry run, print artifact paths\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean Sources/...                # Remove generated files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}
	if *versionFlag {
		fmt.Printf("doppel %s\n", doppel.Version)
		return
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: at least one input path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// quiet wins over verbose
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	if *cleanFlag {
		removed, err := cli.NewCleaner().Clean(args)
		if err != nil {
			diagnostics.Error("Clean failed: %v", err)
			os.Exit(1)
		}
		for _, file := range removed {
			diagnostics.List("removed %s", file)
		}
		diagnostics.Success("Removed %d generated file(s)", len(removed))
		return
	}

	config, err := loadConfig(*configFlag)
	if err != nil {
		diagnostics.Error("%v", err)
		os.Exit(1)
	}

	diagnostics.ToolHeader("Scanning for doppel:: markers")
	if *verboseFlag {
		diagnostics.List("inputs: %s", strings.Join(args, ", "))
		if outputFlag != "" {
			diagnostics.List("output: %s", outputFlag)
		}
	}

	generator := cli.NewGenerator(diagnostics)
	runErr := generator.Run(cli.RunConfig{
		Inputs:    args,
		OutputDir: outputFlag,
		Access:    *accessFlag,
		List:      *listFlag,
		Config:    config,
	})

	summary := generator.GetSummary()
	diagnostics.Summary("Generation complete", map[string]interface{}{
		"Files processed":   summary.FilesProcessed,
		"Files skipped":     summary.FilesSkipped,
		"Artifacts written": summary.ArtifactsWritten,
	})

	if runErr != nil {
		diagnostics.Error("Generation failed: %v", runErr)
		os.Exit(1)
	}
}

// loadConfig loads the named config file, or the default one when the flag
// is empty
func loadConfig(path string) (*cli.FileConfig, error) {
	if path != "" {
		return cli.LoadConfig(path, doppel.Version)
	}
	return cli.LoadDefaultConfig(doppel.Version)
}
