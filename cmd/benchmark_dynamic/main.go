package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/delaneyj/frp/atom"
	"github.com/delaneyj/frp/clock"
	"github.com/delaneyj/frp/observable"
	"github.com/delaneyj/frp/property"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

const (
	repeatsKey   = "repeats"
	subscribeKey = "subscribe"
	onlyKey      = "only"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_dynamic",
		Usage: "Layered property graphs with static (combine) and dynamic (flatten) nodes",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Timed runs per configuration, the best one is reported",
				Value: 5,
			},
			&cli.BoolFlag{
				Name:  subscribeKey,
				Usage: "Attach an observer to every read leaf and count notifications",
				Value: true,
			},
			&cli.StringFlag{
				Name:  onlyKey,
				Usage: "Run only the configuration with this name",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// Every Get pulls each path through the graph, so the work per leaf read
// grows as nSources^(totalLayers-1). Layers stay shallow unless nSources is 1.
var perfTestCfgs = []benchmarkTestConfig{
	{
		name:           "simple component",
		width:          10,
		staticFraction: 1,
		nSources:       2,
		totalLayers:    5,
		readFraction:   0.2,
		iterations:     100000,
	},
	{
		name:           "dynamic component",
		width:          10,
		totalLayers:    4,
		staticFraction: 0.75,
		nSources:       6,
		readFraction:   0.2,
		iterations:     15000,
	},
	{
		name:           "large web app",
		width:          1000,
		totalLayers:    4,
		staticFraction: 0.95,
		nSources:       4,
		readFraction:   1,
		iterations:     500,
	},
	{
		name:           "wide dense",
		width:          1000,
		totalLayers:    3,
		staticFraction: 1,
		nSources:       25,
		readFraction:   1,
		iterations:     20,
	},
	{
		name:           "deep",
		width:          5,
		totalLayers:    100,
		staticFraction: 1,
		nSources:       1,
		readFraction:   1,
		iterations:     5000,
	},
	{
		name:           "very dynamic",
		width:          100,
		totalLayers:    4,
		staticFraction: 0.5,
		nSources:       6,
		readFraction:   1,
		iterations:     500,
	},
}

type results struct {
	sum           int
	count         int64
	notifications int64
	digest        uint64
	duration      time.Duration
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting property graph benchmark, please wait...")
	defer log.Print("Finished property graph benchmark")

	testRepeats := int(cmd.Uint(repeatsKey))
	if testRepeats < 1 {
		return fmt.Errorf("repeats must be at least 1, got %d", testRepeats)
	}
	shouldSubscribe := cmd.Bool(subscribeKey)
	only := cmd.String(onlyKey)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"size", "nSources", "read%", "static%",
		"nTimes", "test", "time",
		"updateRate", "notifications", "title",
	})

	ran := 0
	for _, cfg := range perfTestCfgs {
		if only != "" && cfg.name != only {
			continue
		}
		ran++
		log.Printf("Running '%s' config", cfg.name)

		bestResult := &results{
			duration: time.Hour,
		}
		var firstDigest uint64

		for i := 0; i <= testRepeats; i++ {
			counter := new(int64)
			graph := benchmarkMakeGraph(&benchmarkMakeGraphConfig{
				counter:        counter,
				width:          cfg.width,
				totalLayers:    cfg.totalLayers,
				nSources:       cfg.nSources,
				staticFraction: cfg.staticFraction,
			})

			start := time.Now()
			res := benchmarkRunGraph(&benchmarkRunGraphConfig{
				graph:        graph,
				iteration:    cfg.iterations,
				readFraction: cfg.readFraction,
				subscribe:    shouldSubscribe,
			})
			res.duration = time.Since(start)
			res.count = *counter
			graph.dispose.Unsubscribe()

			// first run warms up
			if i == 0 {
				firstDigest = res.digest
				continue
			}
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i, testRepeats, i*100/testRepeats)
			if res.digest != firstDigest {
				return fmt.Errorf("config '%s' read %x, expected %x", cfg.name, res.digest, firstDigest)
			}
			if res.duration < bestResult.duration {
				bestResult = res
			}
		}

		makeTitle := func() string {
			sb := strings.Builder{}
			sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources))
			if cfg.staticFraction < 1 {
				sb.WriteString(" dynamic")
			}
			if cfg.readFraction < 1 {
				sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.readFraction))
			}
			return sb.String()
		}

		updateRate := float64(bestResult.count) / (float64(bestResult.duration) / float64(time.Millisecond))

		table.Append([]string{
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers), // size
			fmt.Sprint(cfg.nSources),                         // nSources
			fmt.Sprint(cfg.readFraction),                     // read%
			fmt.Sprint(cfg.staticFraction),                   // static%
			humanize.Comma(cfg.iterations),                   // nTimes
			cfg.name,                                         // test
			fmt.Sprint(bestResult.duration),                  // time
			humanize.Comma(int64(updateRate)),                // updateRate
			humanize.Comma(bestResult.notifications),         // notifications
			makeTitle(),                                      // title
		})
	}
	if ran == 0 {
		return fmt.Errorf("no config named '%s'", only)
	}
	table.Render()
	return nil
}

type benchmarkTestConfig struct {
	name           string  // friendly name for the test, should be unique
	width          int64   // width of dependency graph to construct
	totalLayers    int64   // depth of dependency graph to construct
	staticFraction float64 // fraction of nodes that are static
	nSources       int64   // construct a graph with number of sources in each node
	readFraction   float64 // fraction of [0, 1] elements in the last layer from which to read values in each test iteration
	iterations     int64   // number of test iterations
}

type benchmarkGraph struct {
	sources []*atom.Atom[int]
	layers  [][]property.Property[int]
	dispose observable.Subscription
}

type benchmarkMakeGraphConfig struct {
	counter                      *int64
	width, totalLayers, nSources int64
	staticFraction               float64
}

func benchmarkMakeGraph(cfg *benchmarkMakeGraphConfig) *benchmarkGraph {
	env := clock.NewEnv()
	sources := make([]*atom.Atom[int], cfg.width)
	row := make([]property.Property[int], cfg.width)
	for i := range sources {
		sources[i] = atom.New(env, i)
		row[i] = sources[i]
	}

	var disposers []observable.Subscription
	random := rand.New(rand.NewSource(0))
	layers := make([][]property.Property[int], cfg.totalLayers-1)
	for l := range layers {
		var rowDisposers []observable.Subscription
		row, rowDisposers = makeBenchmarkRow(&benchmarkRowConfig{
			sources:        row,
			counter:        cfg.counter,
			staticFraction: cfg.staticFraction,
			nSources:       cfg.nSources,
			rand:           random,
		})
		layers[l] = row
		disposers = append(disposers, rowDisposers...)
	}

	return &benchmarkGraph{
		sources: sources,
		layers:  layers,
		dispose: observable.Composite(disposers...),
	}
}

type benchmarkRunGraphConfig struct {
	graph        *benchmarkGraph
	iteration    int64
	readFraction float64
	subscribe    bool
}

// Execute the graph by writing one of the sources and reading some or all of the leaves.
func benchmarkRunGraph(cfg *benchmarkRunGraphConfig) *results {
	random := rand.New(rand.NewSource(0))
	leaves := cfg.graph.layers[len(cfg.graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := benchmarkRemoveElems(leaves, skipCount, random)

	res := &results{}
	if cfg.subscribe {
		subs := make([]observable.Subscription, len(readLeaves))
		for i, leaf := range readLeaves {
			subs[i] = leaf.Subscribe(observable.ObserverFunc[clock.Time](func(clock.Time) {
				res.notifications++
			}))
		}
		defer observable.Composite(subs...).Unsubscribe()
	}

	digest := xxhash.New()
	buf := make([]byte, 8)
	for i := 0; i < int(cfg.iteration); i++ {
		sourceDex := i % len(cfg.graph.sources)
		cfg.graph.sources[sourceDex].Set(i + sourceDex)

		for _, leaf := range readLeaves {
			binary.LittleEndian.PutUint64(buf, uint64(leaf.Get()))
			digest.Write(buf)
		}
	}

	for _, leaf := range readLeaves {
		res.sum += leaf.Get()
	}
	res.digest = digest.Sum64()
	return res
}

func benchmarkRemoveElems[T any](src []T, rmCount int, rand *rand.Rand) []T {
	if rmCount >= len(src) {
		return nil
	}
	removed := mapset.NewSet[int]()
	for removed.Cardinality() < rmCount {
		removed.Add(rand.Intn(len(src)))
	}
	kept := make([]T, 0, len(src)-rmCount)
	for i, t := range src {
		if !removed.Contains(i) {
			kept = append(kept, t)
		}
	}
	return kept
}

type benchmarkRowConfig struct {
	sources        []property.Property[int]
	counter        *int64
	staticFraction float64
	nSources       int64
	rand           *rand.Rand
}

// sumOf folds sources pairwise so every step memoises on its two inputs.
// A single source still gets its own node.
func sumOf(counter *int64, sources []property.Property[int]) property.Property[int] {
	if len(sources) == 1 {
		return property.Map(sources[0], func(v int) int {
			*counter++
			return v
		})
	}
	acc := sources[0]
	for _, source := range sources[1:] {
		acc = property.Combine2(acc, source, func(a, b int) int {
			*counter++
			return a + b
		})
	}
	return acc
}

func makeBenchmarkRow(cfg *benchmarkRowConfig) (row []property.Property[int], disposers []observable.Subscription) {
	row = make([]property.Property[int], len(cfg.sources))

	for myDex := range cfg.sources {
		picked := mapset.NewSet[int]()
		mySources := make([]property.Property[int], 0, cfg.nSources)
		for sourceDex := 0; sourceDex < int(cfg.nSources); sourceDex++ {
			x := (myDex + sourceDex) % len(cfg.sources)
			if !picked.Add(x) {
				continue
			}
			mySources = append(mySources, cfg.sources[x])
		}

		staticNode := cfg.rand.Float64() < cfg.staticFraction
		if staticNode || len(mySources) < 2 {
			row[myDex] = sumOf(cfg.counter, mySources)
			continue
		}

		// dynamic node, which sources are summed depends on the first one
		first := mySources[0]
		tail := mySources[1:]
		all := sumOf(cfg.counter, mySources)
		dropped := make(map[int]property.Property[int], len(tail))
		selector := property.Map[int, property.Property[int]](first, func(v int) property.Property[int] {
			if v&0x1 == 0 {
				return all
			}
			dropDex := v % len(tail)
			p, ok := dropped[dropDex]
			if !ok {
				kept := make([]property.Property[int], 0, len(mySources)-1)
				kept = append(kept, first)
				for i, t := range tail {
					if i != dropDex {
						kept = append(kept, t)
					}
				}
				p = sumOf(cfg.counter, kept)
				dropped[dropDex] = p
			}
			return p
		})
		flat, dispose := property.Flatten(selector)
		row[myDex] = flat
		disposers = append(disposers, dispose)
	}

	return row, disposers
}
