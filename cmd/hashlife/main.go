// Command hashlife loads a plain-text Life pattern, advances it by one
// doubling step of HashLife evaluation, and prints the evolved center.
// It is a demo driver around the hashlife core, not part of it: spec
// treats a driver binary as an external collaborator, and this binary
// never reaches into hashlife's unexported state.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/agausmann/hashlife"
	"github.com/agausmann/hashlife/internal/grid"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "hashlife: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	sugar := logger.Sugar()

	app := &cli.App{
		Name:  "hashlife",
		Usage: "evolve a plain-text Life pattern by one HashLife doubling step",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "pattern",
				Aliases:  []string{"p"},
				Usage:    "path to a plain-text pattern file ('.' dead, 'O' alive, '!' comment)",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			return run(sugar, c.String("pattern"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		sugar.Errorw("hashlife run failed", "error", err)
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger, path string) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading pattern file: %w", err)
	}

	buf, err := grid.Parse(string(text))
	if err != nil {
		return fmt.Errorf("parsing pattern: %w", err)
	}
	log.Infow("loaded pattern", "path", path)

	cache := hashlife.NewCache()
	world := hashlife.FromSquare(buf.View(), cache)
	log.Infow("built macrocell tree", "side", world.Side(), "interned", cache.Len())

	result, ok := hashlife.Result(world)
	if !ok {
		return fmt.Errorf("pattern of side %d is a single Leaf, has no result", world.Side())
	}
	log.Infow("evolved center computed", "resultSide", result.Side(), "interned", cache.Len())

	fmt.Print(grid.Render(grid.Flatten(result)))
	return nil
}
