package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/emitter"
	"github.com/delaneyj/frp/observable"
	"github.com/delaneyj/frp/property"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	renderKey  = "render"
)

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure write propagation and read latency of properties",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Writes per configuration",
				Value: 100,
			},
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file",
				Value: "default.pgo",
			},
			&cli.BoolFlag{
				Name:  renderKey,
				Usage: "Render result tables",
				Value: true,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if profile := cmd.String(profileKey); profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			return fmt.Errorf("error while creating profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("error while starting profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	shouldRender := cmd.Bool(renderKey)

	log.Printf("warming up")
	benchmarkMapChain(iters, false)

	benchmarkMapChain(iters, shouldRender)
	benchmarkFlatten(iters, shouldRender)
	benchmarkScan(iters, shouldRender)
	return nil
}

func addOne(v int) int {
	return v + 1
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendResult(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// w independent chains of h maps hang off one atom, each with an observer
// pulling its leaf on every notification.
func benchmarkMapChain(iters int, shouldRender bool) {
	tbl := newTable("Map chains")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := atom.New(clock.NewEnv(), 1)
			for i := 0; i < w; i++ {
				var last property.Property[int] = src
				for j := 0; j < h; j++ {
					last = property.Map(last, addOne)
				}
				leaf := last
				last.Subscribe(observable.ObserverFunc[clock.Time](func(clock.Time) {
					leaf.Get()
				}))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}

			appendResult(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// One flattened property switching between w inner atoms.
func benchmarkFlatten(iters int, shouldRender bool) {
	tbl := newTable("Flatten")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		env := clock.NewEnv()
		inners := make([]property.Property[int], w)
		cells := make([]*atom.Atom[int], w)
		for i := range inners {
			cells[i] = atom.New(env, i)
			inners[i] = cells[i]
		}
		selected := atom.New(env, 0)
		flat, dispose := property.Flatten(property.Map[int, property.Property[int]](selected, func(i int) property.Property[int] {
			return inners[i]
		}))
		flat.Subscribe(observable.ObserverFunc[clock.Time](func(clock.Time) {
			flat.Get()
		}))

		for i := 0; i < iters; i++ {
			start := time.Now()
			selected.Set(i % w)
			cells[i%w].Modify(addOne)
			tach.AddTime(time.Since(start))
		}
		dispose.Unsubscribe()

		appendResult(tbl, fmt.Sprintf("switch: %d inners", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}

// A running sum folded from w events per measured iteration.
func benchmarkScan(iters int, shouldRender bool) {
	tbl := newTable("Scan")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		events := emitter.New[int]()
		sum, dispose := property.Scan[int, int](clock.NewEnv(), func(acc, e int) int {
			return acc + e
		}, 0, events)
		sum.Subscribe(observable.ObserverFunc[clock.Time](func(clock.Time) {
			sum.Get()
		}))

		for i := 0; i < iters; i++ {
			start := time.Now()
			for j := 0; j < w; j++ {
				events.Next(j)
			}
			tach.AddTime(time.Since(start))
		}
		dispose.Unsubscribe()

		appendResult(tbl, fmt.Sprintf("fold: %d events", w), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
