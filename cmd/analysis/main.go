// Command analysis runs batches of solver experiments over randomized
// signed-Wang tilesets and renders the collected statistics as an HTML
// report plus a JSON dump.
//
// Each experiment builds a random Wang-style label table (one monochrome
// tile per color, every other tile drawing an east/west and north/south
// color pair from a bounded palette), solves
// an n×n grid with the memoized ruleset on bitset superpositions, and
// records attempts, observations, choices, and wall time.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/tilesolve/ndarray"
	"github.com/katalvlaran/tilesolve/ruleset"
	"github.com/katalvlaran/tilesolve/solver"
	"github.com/katalvlaran/tilesolve/superpos"
	"github.com/katalvlaran/tilesolve/topology"
)

type summaryStats struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2 float64
	for _, v := range x {
		d := v - m
		m2 += d * d
	}
	std := 0.0
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	median := cp[n/2]
	if n%2 == 0 {
		median = 0.5 * (cp[n/2-1] + cp[n/2])
	}
	return summaryStats{Count: n, Mean: m, Std: std, Min: cp[0], Median: median, Max: cp[n-1]}
}

// ------------------------------ experiment setup ------------------------------

// randomWangLabels makes the first palette tiles monochrome (color t+1 on
// every side) and draws, for every later tile, an east/west and a
// north/south color pair in [1, palette]. Positive labels sit on the Pos sides and
// negated labels on the Neg sides, so every color has partners on both
// sides of each axis and instances stay overwhelmingly solvable.
func randomWangLabels(rng *rand.Rand, tiles, palette int) *ndarray.Array2[int] {
	labels, err := ndarray.NewArray2[int](tiles, topology.GridRelationCount)
	if err != nil {
		log.Fatalf("labels: %v", err)
	}
	for t := 0; t < tiles; t++ {
		if t < palette {
			// Monochrome self-compatible tiles keep every instance solvable.
			color := t + 1
			labels.Set(color, t, int(topology.PosX))
			labels.Set(-color, t, int(topology.NegX))
			labels.Set(color, t, int(topology.PosY))
			labels.Set(-color, t, int(topology.NegY))
			continue
		}
		labels.Set(1+rng.Intn(palette), t, int(topology.PosX))
		labels.Set(-(1 + rng.Intn(palette)), t, int(topology.NegX))
		labels.Set(1+rng.Intn(palette), t, int(topology.PosY))
		labels.Set(-(1 + rng.Intn(palette)), t, int(topology.NegY))
	}
	return labels
}

type runRecord struct {
	Size      int     `json:"size"`
	Solved    bool    `json:"solved"`
	Attempts  float64 `json:"attempts"`
	Observes  float64 `json:"observes"`
	Choices   float64 `json:"choices"`
	ElapsedUs float64 `json:"elapsed_us"`
}

func runOne(size, tiles, palette int, seed int64) runRecord {
	rng := rand.New(rand.NewSource(seed))
	labels := randomWangLabels(rng, tiles, palette)

	rules, err := ruleset.NewFastSignedWang(labels, tiles)
	if err != nil {
		log.Fatalf("ruleset: %v", err)
	}
	grid, err := topology.NewGrid(size, size)
	if err != nil {
		log.Fatalf("grid: %v", err)
	}
	proto, err := superpos.NewBit(tiles)
	if err != nil {
		log.Fatalf("prototype: %v", err)
	}

	s, err := solver.New(grid, rules, proto, solver.WithRandomSeed(seed))
	if err != nil {
		log.Fatalf("solver: %v", err)
	}

	start := time.Now()
	solved := s.Solve(true)
	elapsed := time.Since(start)

	st := s.Stats()
	return runRecord{
		Size:      size,
		Solved:    solved,
		Attempts:  float64(st.AttemptCount),
		Observes:  float64(st.ObserveCount),
		Choices:   float64(st.ChoiceCount),
		ElapsedUs: float64(elapsed.Microseconds()),
	}
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []float64) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func newCounterChart(title string, xLabels []string, series map[string][]float64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels)
	for _, name := range sortedKeys(series) {
		bar.AddSeries(name, toBarItems(series[name]))
	}
	bar.SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func newTimeChart(title string, xLabels []string, meanUs []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: "mean wall time per solve, µs"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(xLabels).AddSeries("mean µs", toLineItems(meanUs))
	return line
}

func sortedKeys(m map[string][]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	runs := flag.Int("runs", 50, "solver runs per grid size")
	tiles := flag.Int("tiles", 32, "number of tile variants per instance")
	palette := flag.Int("palette", 3, "number of Wang colors per axis")
	sizesCSV := flag.String("sizes", "8,16,24,32", "comma-separated grid edge lengths")
	seed := flag.Int64("seed", 42, "base PRNG seed; run i uses seed+i")
	outDir := flag.String("out", "analysis_reports", "output directory for reports")
	flag.Parse()

	sizes := parseSizes(*sizesCSV)
	if len(sizes) == 0 {
		log.Fatal("no grid sizes given")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("out dir: %v", err)
	}

	xLabels := make([]string, len(sizes))
	counters := map[string][]float64{
		"attempts": make([]float64, len(sizes)),
		"observes": make([]float64, len(sizes)),
		"choices":  make([]float64, len(sizes)),
	}
	meanUs := make([]float64, len(sizes))
	outStats := map[string]map[string]summaryStats{}
	var records []runRecord

	for si, size := range sizes {
		xLabels[si] = fmt.Sprintf("%d×%d", size, size)
		var attempts, observes, choices, elapsed []float64
		solvedCount := 0
		for i := 0; i < *runs; i++ {
			rec := runOne(size, *tiles, *palette, *seed+int64(i))
			records = append(records, rec)
			attempts = append(attempts, rec.Attempts)
			observes = append(observes, rec.Observes)
			choices = append(choices, rec.Choices)
			elapsed = append(elapsed, rec.ElapsedUs)
			if rec.Solved {
				solvedCount++
			}
		}
		counters["attempts"][si] = computeStats(attempts).Mean
		counters["observes"][si] = computeStats(observes).Mean
		counters["choices"][si] = computeStats(choices).Mean
		meanUs[si] = computeStats(elapsed).Mean
		outStats[xLabels[si]] = map[string]summaryStats{
			"attempts":   computeStats(attempts),
			"observes":   computeStats(observes),
			"choices":    computeStats(choices),
			"elapsed_us": computeStats(elapsed),
		}
		fmt.Printf("%s: %d/%d solved, mean attempts %.2f, mean µs %.0f\n",
			xLabels[si], solvedCount, *runs, counters["attempts"][si], meanUs[si])
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("solver_stats_%s.json", ts))
	if err := saveJSON(jsonPath, map[string]any{"summaries": outStats, "runs": records}); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	page := components.NewPage()
	page.AddCharts(
		newCounterChart("solver counters by grid size", xLabels, counters),
		newTimeChart("solve wall time", xLabels, meanUs),
	)

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("solver_report_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Report page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}

func parseSizes(csv string) []int {
	var out []int
	cur := 0
	have := false
	for _, r := range csv {
		switch {
		case r >= '0' && r <= '9':
			cur = cur*10 + int(r-'0')
			have = true
		case r == ',':
			if have && cur > 0 {
				out = append(out, cur)
			}
			cur, have = 0, false
		}
	}
	if have && cur > 0 {
		out = append(out, cur)
	}
	return out
}
