package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/seancorc/AugmentedChords/internal/logger"
	"github.com/seancorc/AugmentedChords/internal/lyrics/parsers/ultimateguitar"
)

func main() {
	var outputFile string
	var isURL bool

	flag.StringVar(&outputFile, "output", "", "Output file name (default: stdout)")
	flag.BoolVar(&isURL, "url", false, "Treat the argument as a tab page URL instead of a song name")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <song name | tab URL>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "Example: %s dreams fleetwood mac\n", os.Args[0])
		os.Exit(1)
	}

	parser := ultimateguitar.NewParser()

	var sheet *ultimateguitar.SongSheet
	var err error
	if isURL {
		sheet, err = parser.FetchTabURL(args[0])
	} else {
		sheet, err = parser.FetchSong(strings.Join(args, " "))
	}
	if err != nil {
		logger.Error(fmt.Sprintf("Error extracting chords\nError: %v", err))
	}
	if sheet == nil {
		log.Fatalf("Error extracting chords: %v", err)
	}

	result, err := json.MarshalIndent(sheet, "", "  ")
	if err != nil {
		log.Fatalf("Error encoding result: %v", err)
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, result, 0644); err != nil {
			logger.Error(fmt.Sprintf("Error saving result file\nFile: %s\nError: %v", outputFile, err))
			log.Fatalf("Error saving file: %v", err)
		}
		fmt.Printf("Result saved to: %s\n", outputFile)
	} else {
		fmt.Println(string(result))
	}

	if !sheet.Success {
		os.Exit(1)
	}
	logger.Success(fmt.Sprintf("Chord extraction completed\nSong: %s\nLines: %d", sheet.SongTitle, len(sheet.Lines)))
}
