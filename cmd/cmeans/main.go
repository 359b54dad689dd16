// Command cmeans clusters a random (or configured) 2-D point set with hard or
// fuzzy c-means, printing the matrices of the final iteration and optionally
// writing a scatter chart.
//
// Usage:
//
//	cmeans -algorithm fuzzy -points 60 -clusters 3 -chart out.png
//	cmeans -config cmeans.toml -restarts 8
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/hupe1980/cmeans"
	"github.com/hupe1980/cmeans/chart"
	"github.com/hupe1980/cmeans/config"
	"github.com/hupe1980/cmeans/model"
	"github.com/hupe1980/cmeans/render"
	"github.com/hupe1980/cmeans/session"
	"github.com/hupe1980/cmeans/util"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := loadConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("cmeans: %v", err)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	fs := flag.NewFlagSet("cmeans", flag.ContinueOnError)

	var (
		path        = fs.String("config", "", "TOML configuration file")
		algorithm   = fs.String("algorithm", "", "hard (crisp) or fuzzy")
		fuzzifier   = fs.Float64("fuzzifier", 0, "fuzzy exponent m > 1")
		epsilon     = fs.Float64("epsilon", 0, "stop when the cost is at or below this value")
		points      = fs.Int("points", 0, "number of random points")
		clusters    = fs.Int("clusters", 0, "number of centroids")
		iterations  = fs.Int("iterations", 0, "maximum committed iterations")
		restarts    = fs.Int("restarts", 0, "number of random seed sets to try")
		parallelism = fs.Int("parallelism", 0, "concurrent restarts (0 = unlimited)")
		seed        = fs.Int64("seed", 0, "random seed")
		chartPath   = fs.String("chart", "", "write a scatter chart (png, svg, pdf)")
		logLevel    = fs.String("log-level", "", "debug, info, warn or error")
		logJSON     = fs.Bool("log-json", false, "log as JSON")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := config.Default()
	if *path != "" {
		loaded, err := config.Load(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "algorithm":
			cfg.Algorithm = *algorithm
		case "fuzzifier":
			cfg.Fuzzifier = *fuzzifier
		case "epsilon":
			cfg.Epsilon = *epsilon
		case "points":
			cfg.Points = *points
		case "clusters":
			cfg.Clusters = *clusters
		case "iterations":
			cfg.MaxIterations = *iterations
		case "restarts":
			cfg.Restarts = *restarts
		case "parallelism":
			cfg.Parallelism = *parallelism
		case "seed":
			cfg.Seed = *seed
		case "chart":
			cfg.Chart = *chartPath
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-json":
			cfg.Log.JSON = *logJSON
		}
	})

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, w io.Writer) error {
	alg, err := cfg.AlgorithmValue()
	if err != nil {
		return err
	}
	logger, err := cfg.Logger()
	if err != nil {
		return err
	}

	eng, err := cmeans.New(
		cmeans.WithFuzzifier(cfg.Fuzzifier),
		cmeans.WithLogger(logger.WithAlgorithm(alg)),
	)
	if err != nil {
		return err
	}

	s, err := session.New(eng,
		session.WithAlgorithm(alg),
		session.WithBounds(cfg.Bounds),
		session.WithEpsilon(cfg.Epsilon),
		session.WithSeed(cfg.Seed),
	)
	if err != nil {
		return err
	}

	if len(cfg.Data) > 0 {
		for _, p := range cfg.Data {
			if err := s.AddPoint(p); err != nil {
				return err
			}
		}
	} else {
		s.GeneratePoints(cfg.Points)
	}

	if len(cfg.Centroids) > 0 {
		s.SetCentroids(cfg.Centroids)
	} else {
		s.SeedCentroids(cfg.Clusters)
	}

	if cfg.Restarts > 1 {
		if err := pickBestSeed(ctx, eng, alg, s, cfg); err != nil {
			return err
		}
	}

	out, err := s.Run(ctx, cfg.MaxIterations)
	if err != nil {
		return err
	}
	logger.InfoContext(ctx, "run finished",
		"iterations", out.Iterations,
		"converged", out.Converged,
		"cost", out.Result.Cost,
	)

	// Report the state the session ended in, not the step that produced it.
	final, err := s.Evaluate(ctx)
	if err != nil {
		return err
	}
	if err := report(w, s.Points(), s.Centroids(), final); err != nil {
		return err
	}

	if cfg.Chart != "" {
		p, err := chart.Scatter(fmt.Sprintf("%s c-means", alg), s.Points(), s.Centroids(), final.Memberships)
		if err != nil {
			return err
		}
		if err := chart.Save(p, cfg.Chart); err != nil {
			return err
		}
		logger.InfoContext(ctx, "chart written", "path", cfg.Chart)
	}
	return nil
}

func pickBestSeed(ctx context.Context, eng *cmeans.Engine, alg cmeans.Algorithm, s *session.Session, cfg *config.Config) error {
	rng := util.NewRNG(cfg.Seed + 1)
	points := s.Points()

	seeds := make([]model.Points, cfg.Restarts)
	seeds[0] = s.Centroids()
	for i := 1; i < len(seeds); i++ {
		seeds[i] = rng.Sample(points, cfg.Clusters)
	}

	best, _, err := session.BestOf(ctx, eng, alg, points, seeds, cfg.MaxIterations, cfg.Parallelism)
	if err != nil {
		return err
	}
	eng.Logger().InfoContext(ctx, "best seed selected", "seed", best.Seed, "restarts", cfg.Restarts)

	s.SetCentroids(seeds[best.Seed])
	return nil
}

func report(w io.Writer, points, centroids model.Points, r *cmeans.Result) error {
	sections := []func() error{
		func() error { return render.Points(w, "Points", "P", points) },
		func() error { return render.Points(w, "Centroids", "C", centroids) },
		func() error { return render.Matrix(w, "Distance matrix", r.Distances) },
		func() error { return render.Matrix(w, "Membership matrix", r.Memberships) },
		func() error { return render.Costs(w, r.Costs, r.Cost) },
	}
	for _, section := range sections {
		if err := section(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
