package main

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/alecthomas/kong"

	"github.com/jdginn/go-prism/interact"
	goprism "github.com/jdginn/go-prism/prism"
	prismConfig "github.com/jdginn/go-prism/prism/config"
	prismExperiment "github.com/jdginn/go-prism/prism/experiment"
)

var CLI struct {
	Trace    TraceCmd    `cmd:"" help:"Trace light through a prism and save the results"`
	Validate ValidateCmd `cmd:"" help:"Check a config file"`
	Browse   BrowseCmd   `cmd:"" help:"Trace light through a prism and browse the segments"`
}

func loadConfig(path string) (*prismConfig.Config, error) {
	return prismConfig.LoadFromFile(path, prismConfig.LoadOptions{
		ValidateImmediately: true,
		ResolvePaths:        true,
		MergeFiles:          true,
	})
}

type TraceCmd struct {
	Config   string `arg:"" name:"config" help:"config file to trace"`
	RunsDir  string `name:"runs-dir" default:"runs" help:"directory to create the run directory in"`
	Parallel bool   `name:"parallel" help:"trace spectrum samples concurrently, overriding the config"`
}

func (c TraceCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	run, err := prismExperiment.CreateRunDirectory(c.RunsDir)
	if err != nil {
		return fmt.Errorf("creating run directory: %w", err)
	}
	if err := run.CopyConfigFile(c.Config); err != nil {
		return fmt.Errorf("copying config file: %w", err)
	}
	log.Printf("run %s: %s", run.ID, run.Path)

	scene := config.Scene()
	params := config.Trace.Create()

	var segments []goprism.Segment
	if c.Parallel || config.Trace.Parallel {
		segments, err = scene.TraceParallel(context.Background(), params)
		if err != nil {
			return fmt.Errorf("tracing: %w", err)
		}
	} else {
		segments = scene.Trace(params)
	}
	log.Printf("traced %d samples into %d segments", len(scene.Spectrum), len(segments))

	if config.Output.Image != "" {
		if err := config.Output.Create().SavePNG(run.GetFilePath(config.Output.Image), scene, segments); err != nil {
			return err
		}
	}
	if config.Output.Segments != "" {
		if err := goprism.SaveSegmentsToJSON(run.GetFilePath(config.Output.Segments), scene, segments); err != nil {
			return err
		}
	}

	ds := scene.Analyze(params)
	for _, d := range ds {
		if d.Escaped {
			fmt.Printf("%-8s %5.0f nm  deviation %7.3f°  %d faces\n", d.Sample.Name, d.Sample.Wavelength, d.Deviation*180/math.Pi, d.Bounces)
		} else {
			fmt.Printf("%-8s %5.0f nm  trapped after %d faces\n", d.Sample.Name, d.Sample.Wavelength, d.Bounces)
		}
	}
	fmt.Printf("spread %.3f°\n", goprism.Spread(ds)*180/math.Pi)

	if config.Output.DeviationPlot != "" {
		if err := goprism.PlotDeviation(ds, config.Output.Width, config.Output.Height, run.GetFilePath(config.Output.DeviationPlot)); err != nil {
			return err
		}
	}

	return prismConfig.SaveToFile(config, run.GetFilePath("resolved.yaml"))
}

type ValidateCmd struct {
	Config string `arg:"" name:"config" help:"config file to check"`
}

func (c ValidateCmd) Run() error {
	config, err := prismConfig.LoadFromFile(c.Config, prismConfig.LoadOptions{
		ResolvePaths: true,
		MergeFiles:   true,
	})
	if err != nil {
		return err
	}
	if errs := config.Validate(); len(errs) > 0 {
		fmt.Print(prismConfig.FormatValidationErrors(errs))
		return fmt.Errorf("%d validation errors", len(errs))
	}
	fmt.Println("config is valid")
	return nil
}

type BrowseCmd struct {
	Config string `arg:"" name:"config" help:"config file to trace"`
}

func (c BrowseCmd) Run() error {
	config, err := loadConfig(c.Config)
	if err != nil {
		return err
	}
	return interact.Browse(config.Scene().TracePaths(config.Trace.Create()))
}

func main() {
	ctx := kong.Parse(&CLI)
	err := ctx.Run()
	if err != nil {
		log.Fatal(err)
	}
}
