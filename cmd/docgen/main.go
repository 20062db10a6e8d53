package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	sitebackend "github.com/Zouhir-Harch/site-backend"
	"github.com/Zouhir-Harch/site-backend/internal/document"
)

func main() {
	var (
		docType    string
		inputFile  string
		outputFile string
	)

	flag.StringVar(&docType, "type", "", "Document type: lettre-motivation, page-de-garde or cv")
	flag.StringVar(&inputFile, "input", "", "Input JSON file path")
	flag.StringVar(&outputFile, "output", "", "Output PDF file path")
	flag.Parse()

	if docType == "" || inputFile == "" {
		fmt.Println("Error: -type and -input are required")
		flag.Usage()
		os.Exit(1)
	}

	if outputFile == "" {
		ext := filepath.Ext(inputFile)
		outputFile = inputFile[:len(inputFile)-len(ext)] + ".pdf"
	}

	raw, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Printf("Error reading input file: %v\n", err)
		os.Exit(1)
	}

	out, err := generate(docType, raw)
	if err != nil {
		fmt.Printf("Error generating document: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, out, 0o644); err != nil {
		fmt.Printf("Error writing output file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully wrote %s\n", outputFile)
}

func generate(docType string, raw []byte) ([]byte, error) {
	generator := sitebackend.New()

	switch docType {
	case "lettre-motivation":
		var data document.LetterData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse input: %w", err)
		}
		return generator.GenerateLetter(data)
	case "page-de-garde":
		var data document.TitlePageData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse input: %w", err)
		}
		return generator.GenerateTitlePage(data)
	case "cv":
		var data document.ResumeData
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("failed to parse input: %w", err)
		}
		return generator.GenerateResume(data)
	default:
		return nil, fmt.Errorf("unknown document type %q", docType)
	}
}
