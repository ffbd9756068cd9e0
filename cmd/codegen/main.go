package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/frp/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	maxArityKey = "arity"
	outputKey   = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate fixed arity tuple helpers for properties",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  maxArityKey,
				Usage: "Largest tuple arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Destination file",
				Value: "property/tuple_gen.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for property tuples started !")
	defer func() {
		log.Printf("Codegen for property tuples finished in %v", time.Since(start))
	}()

	maxArity := int(cmd.Uint(maxArityKey))
	if maxArity < 2 {
		return fmt.Errorf("arity must be at least 2, got %d", maxArity)
	}
	log.Printf("Max arity: %d", maxArity)

	contents := templates.TuplesGen(maxArity)
	out := cmd.String(outputKey)
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return fmt.Errorf("error while writing %s: %w", out, err)
	}

	return nil
}
