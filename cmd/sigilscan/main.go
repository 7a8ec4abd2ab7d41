// Command sigilscan recognizes vector-stroke glyphs in a single PDF
// document and writes a copy with an invisible, searchable text layer
// overlaid on top of the original artwork.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/unidoc/unipdf/v4/model"

	unicommon "github.com/unidoc/unipdf/v4/common"

	"github.com/sigilscan/sigilscan"
	"github.com/sigilscan/sigilscan/common"
	"github.com/sigilscan/sigilscan/internal/overlay"
	"github.com/sigilscan/sigilscan/internal/pdfsource"
	"github.com/sigilscan/sigilscan/sigil"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sigilscan:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("sigilscan", flag.ExitOnError)
	dictPath := fs.String("dict", "", "path to the sigil dictionary JSON file")
	inputPath := fs.String("in", "", "path to the input PDF")
	outputPath := fs.String("out", "", "path to write the overlaid PDF to")
	fontSize := fs.Float64("font-size", 10, "nominal point size of the overlay text")
	debugVisible := fs.Bool("debug-visible", false, "render the overlay text visibly, for alignment debugging")
	verbosity := fs.Int("v", int(common.LogLevelWarning), "log verbosity, 0 (error) through 4 (debug)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *dictPath == "" || *inputPath == "" || *outputPath == "" {
		fs.Usage()
		return fmt.Errorf("-dict, -in and -out are required")
	}

	level := common.LogLevel(*verbosity)
	common.SetLogger(common.NewConsoleLogger(level))
	unicommon.SetLogger(unicommon.NewConsoleLogger(unicommon.LogLevel(level)))

	dictFile, err := os.Open(*dictPath)
	if err != nil {
		return err
	}
	defer dictFile.Close()

	dict, err := sigil.Load(dictFile)
	if err != nil {
		return fmt.Errorf("loading dictionary: %w", err)
	}

	doc, err := pdfsource.Open(*inputPath)
	if err != nil {
		return err
	}
	defer doc.Close()

	numPages, err := doc.NumPages()
	if err != nil {
		return err
	}

	font, err := model.NewStandard14Font(model.HelveticaName)
	if err != nil {
		return err
	}

	var opts []overlay.Option
	if *debugVisible {
		opts = append(opts, overlay.WithDebugVisible())
	}
	writer := overlay.New(font, opts...)

	for i := 1; i <= numPages; i++ {
		page, err := doc.Page(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}

		absOps, err := doc.PageOps(i)
		if err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}

		result := sigilscan.MatchSigils(dict, absOps, false)
		for tuple, count := range result.Ambiguous {
			common.Log.Notice("page %d: ambiguous match group %s seen %d time(s)", i, tuple, count)
		}

		if err := writer.AddPage(page); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
		if err := writer.PlaceMatches(result.Matches, *fontSize); err != nil {
			return fmt.Errorf("page %d: %w", i, err)
		}
	}

	return writer.WriteToFile(*outputPath)
}
