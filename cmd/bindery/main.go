package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bindery/bindery"
	"github.com/bindery/bindery/internal/document"
	"github.com/bindery/bindery/internal/parser/bk"
)

func main() {
	var (
		inputFile   string
		outputFile  string
		format      string
		pageNumbers bool
		fontMetrics bool
		verbose     bool
	)

	flag.StringVar(&inputFile, "input", "", "Input book file path (.bk or .html)")
	flag.StringVar(&outputFile, "output", "", "Output file path (defaults to the book title)")
	flag.StringVar(&format, "format", "pdf", "Output format: pdf or json")
	flag.BoolVar(&pageNumbers, "page-numbers", false, "Add page numbers in the bottom margin")
	flag.BoolVar(&fontMetrics, "font-metrics", false, "Measure text with real glyph metrics")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	flag.Parse()

	if inputFile == "" {
		fmt.Println("Error: input file is required")
		flag.Usage()
		os.Exit(1)
	}
	if format != "pdf" && format != "json" {
		fmt.Printf("Error: unknown format %q\n", format)
		os.Exit(1)
	}

	converter := bindery.New(
		bindery.WithDebug(verbose),
		bindery.WithPageNumbers(pageNumbers),
		bindery.WithGoFontMetrics(fontMetrics),
	)

	book, err := converter.LoadBook(inputFile)
	if err != nil {
		fmt.Printf("Error loading book: %v\n", err)
		if help := bk.Help(err); help != "" {
			fmt.Printf("Hint: %s\n", help)
		}
		os.Exit(1)
	}

	if outputFile == "" {
		outputFile = document.SanitizeFilename(book.Title) + "." + format
	}

	switch format {
	case "json":
		data, err := converter.LayoutJSON(book)
		if err != nil {
			fmt.Printf("Error laying out book: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(outputFile, data, 0o644); err != nil {
			fmt.Printf("Error writing output: %v\n", err)
			os.Exit(1)
		}
	case "pdf":
		tree, err := converter.Layout(book)
		if err != nil {
			fmt.Printf("Error laying out book: %v\n", err)
			os.Exit(1)
		}
		if err := converter.RenderToFile(book, tree, outputFile); err != nil {
			fmt.Printf("Error rendering PDF: %v\n", err)
			os.Exit(1)
		}
	}

	if verbose {
		fmt.Printf("Successfully converted %s to %s\n", inputFile, outputFile)
	}
}
