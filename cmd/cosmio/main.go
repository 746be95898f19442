package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	cosmio "github.com/goliatone/go-cosmio"
	"github.com/goliatone/go-cosmio/pkg/cosmology"
	"github.com/goliatone/go-cosmio/pkg/formats/jsonfmt"
	"github.com/goliatone/go-cosmio/pkg/formats/yamlfmt"
	"github.com/goliatone/go-cosmio/pkg/table"
)

func main() {
	realization := flag.String("cosmology", "Planck18", "built-in realization to serialize")
	input := flag.String("input", "", "input document (json/yaml) used instead of a built-in realization")
	output := flag.String("output", "", "destination file path")
	format := flag.String("format", "", "format token (defaults to the output extension)")
	tableKind := flag.String("table", "array", "table container kind: array or plain")
	latexNames := flag.Bool("latex-names", false, "rename parameter columns to LaTeX display names")
	overwrite := flag.Bool("overwrite", false, "replace the destination if it exists")
	flag.Parse()

	if *output == "" {
		log.Fatal("missing -output path")
	}

	cosmo, err := resolveRecord(*input, *realization)
	if err != nil {
		log.Fatalf("Failed to resolve cosmology: %v", err)
	}

	cls, err := resolveTableKind(*tableKind)
	if err != nil {
		log.Fatalf("Invalid -table value: %v", err)
	}

	allowOverwrite := *overwrite
	if !allowOverwrite {
		if _, statErr := os.Stat(*output); statErr == nil {
			confirmed := false
			prompt := &survey.Confirm{
				Message: fmt.Sprintf("%s exists. Overwrite?", *output),
			}
			if err := survey.AskOne(prompt, &confirmed); err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
			if !confirmed {
				log.Fatal("Aborted: destination exists")
			}
			allowOverwrite = true
		}
	}

	opts := []cosmio.WriteOption{
		cosmio.WithTableClass(cls),
		cosmio.WithLaTeXNames(*latexNames),
		cosmio.WithOverwrite(allowOverwrite),
	}
	if *format != "" {
		opts = append(opts, cosmio.WithFormat(*format))
	}

	if err := cosmio.Write(context.Background(), cosmo, *output, opts...); err != nil {
		log.Fatalf("Failed to write %s: %v", *output, err)
	}
	fmt.Printf("%s %s written to %s\n", cosmo.Class(), cosmo.Name(), *output)
}

func resolveRecord(input, realization string) (*cosmology.Cosmology, error) {
	if input == "" {
		cosmo, ok := cosmology.Realization(realization)
		if !ok {
			return nil, fmt.Errorf("unknown realization %q (available: %s)", realization, strings.Join(cosmology.Realizations(), ", "))
		}
		return cosmo, nil
	}

	switch strings.ToLower(filepath.Ext(input)) {
	case ".json":
		return jsonfmt.ReadCosmology(input)
	case ".yaml", ".yml":
		return yamlfmt.ReadCosmology(input)
	default:
		return nil, fmt.Errorf("unsupported input document %q (expected .json or .yaml)", input)
	}
}

func resolveTableKind(kind string) (table.Class, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "array":
		return table.NewArray, nil
	case "plain":
		return table.NewPlain, nil
	default:
		return nil, fmt.Errorf("expected array or plain, got %q", kind)
	}
}
