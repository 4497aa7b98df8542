package activity

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/briangreenhill/ftracker/internal/config"
	"github.com/briangreenhill/ftracker/internal/training"
)

type sensorPackage struct {
	code string
	data []float64
}

var samplePackages = []sensorPackage{
	{"SWM", []float64{720, 1, 80, 25, 40}},
	{"RUN", []float64{15000, 1, 75}},
	{"WLK", []float64{9000, 1, 75, 180}},
}

type CLI struct {
	writer          io.Writer
	cfg             config.Config
	activityService *Service
	args            []string
	logger          *slog.Logger
}

func NewCLI(w io.Writer, cfg config.Config, logger *slog.Logger, activityService *Service, args []string) *CLI {
	return &CLI{
		writer:          w,
		cfg:             cfg,
		activityService: activityService,
		args:            args,
		logger:          logger,
	}
}

func (c *CLI) Run(ctx context.Context) error {
	if len(c.args) == 0 {
		c.Usage()
		return nil
	}

	switch c.args[0] {
	case "report":
		return c.Report()
	case "add":
		return c.AddWorkout(ctx)
	case "list":
		return c.ListWorkouts(ctx)
	case "api":
		return c.RunAPI(ctx)
	default:
		c.Usage()
	}
	return nil
}

func (c *CLI) Usage() {
	fmt.Fprintf(c.writer, "Usage: ftracker [command] [flags]\n--help show this message\n\n"+
		"\treport [--type CODE --data v1,v2,...]\n"+
		"\tadd --type CODE --data v1,v2,...\n"+
		"\tadd --gpx FILE [--weight KG]\n"+
		"\tlist\n"+
		"\tapi\n\n"+
		"codes: %s\n", joinCodes())
}

// Report prints summaries without storing them. With no flags it prints
// the built-in sample packages.
func (c *CLI) Report() error {
	fs := c.flagSet("report")
	code := fs.String("type", "", "activity code")
	raw := fs.String("data", "", "comma separated sensor values")
	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	if (*code == "") != (*raw == "") {
		fs.Usage()
		return fmt.Errorf("report needs both --type and --data, or neither")
	}

	packages := samplePackages
	if *code != "" {
		data, err := parseData(*raw)
		if err != nil {
			return err
		}
		packages = []sensorPackage{{*code, data}}
	}

	for _, p := range packages {
		info, err := c.activityService.Compute(p.code, p.data)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.writer, info.Message())
	}
	return nil
}

func (c *CLI) AddWorkout(ctx context.Context) error {
	fs := c.flagSet("add")
	code := fs.String("type", "", "activity code")
	raw := fs.String("data", "", "comma separated sensor values")
	gpxFile := fs.String("gpx", "", "path to gpx file")
	weight := fs.Float64("weight", c.cfg.DefaultWeightKg, "body weight in kg for gpx imports")
	if err := fs.Parse(c.args[1:]); err != nil {
		return err
	}

	var w Workout
	switch {
	case *gpxFile != "":
		c.logger.Info("Importing gpx file", slog.String("gpx_file", *gpxFile))
		gpxBytes, err := readGPXFile(*gpxFile)
		if err != nil {
			return err
		}
		w, err = c.activityService.ImportGPX(ctx, gpxBytes, *weight)
		if err != nil {
			return err
		}
	case *code != "":
		data, err := parseData(*raw)
		if err != nil {
			return err
		}
		w, err = c.activityService.Add(ctx, *code, data)
		if err != nil {
			return err
		}
	default:
		fs.Usage()
		return fmt.Errorf("add needs --type or --gpx")
	}

	fmt.Fprintln(c.writer, w.Message)
	fmt.Fprintf(c.writer, "Workout %s added successfully\n", w.ID)
	return nil
}

func (c *CLI) ListWorkouts(ctx context.Context) error {
	workouts, err := c.activityService.List(ctx)
	if err != nil {
		return err
	}
	for _, w := range workouts {
		fmt.Fprintf(c.writer, "%s %s\n", w.ID, w.Message)
	}
	return nil
}

func (c *CLI) RunAPI(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	server := &http.Server{
		Addr:    c.cfg.HTTPAddress,
		Handler: NewAPI(c.logger, c.activityService),
	}

	go func() {
		<-ctx.Done()
		c.logger.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), c.cfg.ShutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			c.logger.Error("Error shutting down server", slog.Any("error", err))
		}
	}()

	c.logger.Info("Starting server", slog.String("address", c.cfg.HTTPAddress))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		c.logger.Error("Error starting server", slog.Any("error", err))
		return err
	}

	return nil
}

func (c *CLI) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.writer)
	fs.Usage = c.Usage
	return fs
}

func parseData(raw string) ([]float64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("--data is required")
	}
	parts := strings.Split(raw, ",")
	data := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing sensor value %q: %w", part, err)
		}
		data = append(data, v)
	}
	return data, nil
}

func joinCodes() string {
	codes := training.Codes()
	out := make([]string, len(codes))
	for i, code := range codes {
		out[i] = string(code)
	}
	return strings.Join(out, ", ")
}
