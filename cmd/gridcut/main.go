// GridCut — grid-based sheet layout optimizer
//
// Packs a list of rectangular parts onto a stock sheet and exports the
// resulting layout as PDF, Excel, or QR-coded part labels.
//
// Examples:
//
//	gridcut -in parts.csv -sheet-width 2440 -sheet-height 1220 -pdf layout.pdf
//	gridcut -in parts.xlsx -metric width -xlsx layout.xlsx
//	gridcut -in drawing.dxf -resolution 5 -save project.json
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/piwi3910/GridCut/internal/export"
	"github.com/piwi3910/GridCut/internal/importer"
	"github.com/piwi3910/GridCut/internal/layout"
	"github.com/piwi3910/GridCut/internal/model"
	"github.com/piwi3910/GridCut/internal/project"
)

func main() {
	var (
		inPath      = flag.String("in", "", "input part list (.csv, .xlsx, .dxf, or .json project)")
		sheetWidth  = flag.Float64("sheet-width", 0, "sheet width in mm (overrides config default)")
		sheetHeight = flag.Float64("sheet-height", 0, "sheet height in mm (overrides config default)")
		sheetLabel  = flag.String("sheet-label", "", "sheet label for reports")
		resolution  = flag.Float64("resolution", 0, "grid resolution in mm per cell")
		kerf        = flag.Float64("kerf", -1, "kerf width in mm")
		trim        = flag.Float64("trim", -1, "edge trim in mm")
		metric      = flag.String("metric", "", "free-rectangle metric: area, width, or height")
		timeout     = flag.Duration("timeout", time.Minute, "abort packing after this duration")
		pdfOut      = flag.String("pdf", "", "write layout PDF to this path")
		labelsOut   = flag.String("labels", "", "write QR part labels PDF to this path")
		xlsxOut     = flag.String("xlsx", "", "write layout workbook to this path")
		saveOut     = flag.String("save", "", "save the project (parts, settings, result) to this path")
	)
	flag.Parse()

	if *inPath == "" {
		flag.Usage()
		log.Fatal("no input file: use -in")
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	proj := model.NewProject()
	cfg.ApplyToSettings(&proj.Settings)
	proj.Sheet = model.NewSheet("Stock sheet", cfg.DefaultSheetWidth, cfg.DefaultSheetHeight)

	if strings.EqualFold(filepath.Ext(*inPath), ".json") {
		loaded, err := project.Load(*inPath)
		if err != nil {
			log.Fatalf("cannot load project: %v", err)
		}
		proj = loaded
	} else {
		result := importParts(*inPath)
		for _, w := range result.Warnings {
			log.Printf("warning: %s", w)
		}
		for _, e := range result.Errors {
			log.Printf("error: %s", e)
		}
		if len(result.Parts) == 0 {
			log.Fatal("no parts imported")
		}
		proj.Name = strings.TrimSuffix(filepath.Base(*inPath), filepath.Ext(*inPath))
		proj.Parts = result.Parts
	}

	// Flag overrides
	if *sheetWidth > 0 {
		proj.Sheet.Width = *sheetWidth
	}
	if *sheetHeight > 0 {
		proj.Sheet.Height = *sheetHeight
	}
	if *sheetLabel != "" {
		proj.Sheet.Label = *sheetLabel
	}
	if *resolution > 0 {
		proj.Settings.Resolution = *resolution
	}
	if *kerf >= 0 {
		proj.Settings.KerfWidth = *kerf
	}
	if *trim >= 0 {
		proj.Settings.EdgeTrim = *trim
	}
	if *metric != "" {
		switch model.HoleMetric(*metric) {
		case model.MetricArea, model.MetricWidth, model.MetricHeight:
			proj.Settings.HoleMetric = model.HoleMetric(*metric)
		default:
			log.Fatalf("unknown metric %q: use area, width, or height", *metric)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	engine := layout.New(proj.Settings)
	result, err := engine.Run(ctx, proj.Parts, proj.Sheet)
	if err != nil {
		log.Fatalf("packing failed: %v", err)
	}
	proj.Result = &result

	printSummary(result)

	if *pdfOut != "" {
		if err := export.ExportPDF(*pdfOut, result, proj.Settings); err != nil {
			log.Fatalf("PDF export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *pdfOut)
	}
	if *labelsOut != "" {
		if err := export.ExportLabels(*labelsOut, result); err != nil {
			log.Fatalf("label export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *labelsOut)
	}
	if *xlsxOut != "" {
		if err := export.ExportExcel(*xlsxOut, result); err != nil {
			log.Fatalf("Excel export failed: %v", err)
		}
		fmt.Printf("wrote %s\n", *xlsxOut)
	}
	if *saveOut != "" {
		if err := project.Save(*saveOut, proj); err != nil {
			log.Fatalf("project save failed: %v", err)
		}
		cfg.AddRecentProject(*saveOut, 10)
		if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil {
			log.Printf("warning: cannot update config: %v", err)
		}
		fmt.Printf("wrote %s\n", *saveOut)
	}
}

func importParts(path string) importer.ImportResult {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return importer.ImportCSV(path)
	case ".xlsx", ".xls":
		return importer.ImportExcel(path)
	case ".dxf":
		return importer.ImportDXF(path)
	default:
		return importer.ImportResult{
			Errors: []string{fmt.Sprintf("unsupported input format: %s", filepath.Ext(path))},
		}
	}
}

func printSummary(result model.LayoutResult) {
	fmt.Printf("Sheet: %s (%.0f x %.0f mm)\n",
		result.Sheet.Label, result.Sheet.Width, result.Sheet.Height)
	fmt.Printf("Placed %d parts, efficiency %.1f%%\n",
		len(result.Placements), result.Efficiency())
	fmt.Printf("Largest free rectangle: %.0f x %.0f mm\n",
		result.LargestFree.Width, result.LargestFree.Height)

	for _, p := range result.Placements {
		rot := ""
		if p.Rotated {
			rot = " (rotated)"
		}
		fmt.Printf("  %-20s %7.0f x %-7.0f @ (%.0f, %.0f)%s\n",
			p.Part.Label, p.PlacedWidth(), p.PlacedHeight(), p.X, p.Y, rot)
	}

	if result.Canceled {
		fmt.Println("NOTE: packing was canceled before completion; the layout is partial")
	}
	if len(result.UnplacedParts) > 0 {
		fmt.Printf("WARNING: %d parts could not be placed:\n", len(result.UnplacedParts))
		for _, p := range result.UnplacedParts {
			fmt.Printf("  %s (%.0f x %.0f mm)\n", p.Label, p.Width, p.Height)
		}
	}
}
