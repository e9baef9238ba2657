package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/orchestrator"
	"github.com/goliatone/go-parsec/pkg/params"
	"github.com/goliatone/go-parsec/pkg/prompt"
	"github.com/goliatone/go-parsec/pkg/render"
)

const defaultEntry = "symmetric-sample"

func main() {
	parsec11 := flag.String("params", "", `PARSEC-11 interchange string, e.g. "Parsec-11 [0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20]"`)
	catalogDir := flag.String("catalog", "", "directory of YAML/JSON catalog files (replaces the embedded catalog)")
	name := flag.String("name", "", "catalog entry to render")
	interactive := flag.Bool("interactive", false, "prompt for each parameter")
	renderer := flag.String("renderer", "", "renderer to use (csv, selig, svg, png); inferred from -output when empty")
	points := flag.Int("points", orchestrator.DefaultPoints, "number of chordwise positions")
	spacing := flag.String("spacing", string(airfoil.SpacingCosine), "chordwise distribution: linear or cosine")
	variant := flag.String("theme-variant", "", "theme variant for svg output (e.g. dark)")
	title := flag.String("title", "", "title for plots and coordinate files")
	width := flag.Float64("width", 0, "plot width (pixels for svg, inches for png)")
	height := flag.Float64("height", 0, "plot height (pixels for svg, inches for png)")
	precision := flag.Int("precision", 0, "decimals written by csv and selig output")
	output := flag.String("output", "", "output file (stdout if empty)")
	describe := flag.Bool("describe", false, "print the resolved parameters and coefficients instead of rendering")
	list := flag.Bool("list", false, "list catalog entries and renderers")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var options []orchestrator.Option
	if *catalogDir != "" {
		options = append(options, orchestrator.WithCatalogFS(os.DirFS(*catalogDir)))
	}
	gen := orchestrator.New(options...)

	if *list {
		printList(gen)
		return
	}

	req := orchestrator.Request{
		Parsec11: *parsec11,
		Name:     *name,
		Renderer: *renderer,
		Output:   *output,
		Points:   *points,
		Spacing:  airfoil.Spacing(strings.ToLower(strings.TrimSpace(*spacing))),
		RenderOptions: render.RenderOptions{
			Title:     *title,
			Width:     *width,
			Height:    *height,
			Variant:   *variant,
			Precision: *precision,
		},
	}

	if *interactive {
		ps, err := collect(ctx, gen, req)
		if errors.Is(err, prompt.ErrAborted) {
			log.Fatalf("Aborted")
		}
		if err != nil {
			log.Fatalf("Failed to collect parameters: %v", err)
		}
		req.Params, req.Parsec11, req.Name = &ps, "", ""
	}

	if *describe {
		if err := printDescription(gen, req); err != nil {
			log.Fatalf("Failed to describe airfoil: %v", err)
		}
		return
	}

	result, err := gen.Run(ctx, req)
	if err != nil {
		log.Fatalf("Failed to generate airfoil: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, result.Output, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		log.Printf("%s output (%d positions) written to %s", result.Renderer, len(result.Profile.X), *output)
		return
	}
	if _, err := os.Stdout.Write(result.Output); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// collect runs the interactive flow. Without -params or -name the user first
// picks a catalog entry to start from.
func collect(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request) (params.ParameterSet, error) {
	driver := prompt.NewSurveyDriver(os.Stderr)

	if req.Parsec11 != "" || req.Name != "" {
		_, defaults, err := gen.ResolveParams(req)
		if err != nil {
			return params.ParameterSet{}, err
		}
		return prompt.CollectParameters(ctx, driver, defaults)
	}

	defaults := params.New()
	if gen.Catalog().Len() > 0 {
		entry, err := prompt.ChooseEntry(ctx, driver, gen.Catalog(), defaultEntry)
		if err != nil {
			return params.ParameterSet{}, err
		}
		defaults = entry.Params
	}
	return prompt.CollectParameters(ctx, driver, defaults)
}

func printDescription(gen *orchestrator.Orchestrator, req orchestrator.Request) error {
	name, ps, err := gen.ResolveParams(req)
	if err != nil {
		return err
	}
	foil, err := airfoil.New(ps)
	if err != nil {
		return err
	}
	if name != "" {
		fmt.Println(name)
	}
	fmt.Print(params.Describe(ps))
	fmt.Printf("upper coefficients: %s\n", foil.UpperCoefficients())
	fmt.Printf("lower coefficients: %s\n", foil.LowerCoefficients())
	fmt.Printf("leading edge radius: upper %.6g, lower %.6g\n", foil.LeadingEdgeRadius(airfoil.SurfaceUpper), foil.LeadingEdgeRadius(airfoil.SurfaceLower))
	return nil
}

func printList(gen *orchestrator.Orchestrator) {
	fmt.Println("airfoils:")
	for _, name := range gen.Catalog().Names() {
		entry, _ := gen.Catalog().Get(name)
		fmt.Printf("  %-22s %s\n", name, entry.Description)
	}
	fmt.Println("renderers:")
	for _, name := range gen.Registry().List() {
		r, _ := gen.Registry().Get(name)
		fmt.Printf("  %-22s %s\n", name, r.ContentType())
	}
}
