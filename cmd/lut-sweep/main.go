package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"runtime"
	"sort"
	"sync"
	"time"

	"entombed/pkg/entombed"
)

type mutation struct {
	index    int
	decision entombed.Decision
}

func (m mutation) String() string {
	if m.index < 0 {
		return "baseline"
	}
	return fmt.Sprintf("rule[%2d]=%-7s", m.index, m.decision)
}

type sweepResult struct {
	mutation mutation
	table    entombed.Table
	lastMean float64
	minProb  float64
	maxProb  float64
	distance float64
}

func main() {
	rows := flag.Int("rows", 25, "rows to propagate per table")
	columns := flag.Int("columns", 39, "columns to propagate per table")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	target := flag.Float64("target", 0.5, "wall density to aim for in the last row")
	rules := flag.String("rules", entombed.DefaultTable().String(), "base rule table")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("lut-sweep: ")

	base, err := entombed.ParseTable(*rules)
	if err != nil {
		log.Fatal(err)
	}
	if *rows < 0 || *columns <= 0 {
		log.Fatalf("invalid dimensions rows=%d columns=%d", *rows, *columns)
	}

	muts := mutations(base)
	fmt.Printf("Sweeping %d tables (%d workers, %dx%d cells)\n", len(muts), *workers, *columns, *rows)

	jobs := make(chan mutation)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for m := range jobs {
				results <- evaluate(base, m, *rows, *columns, *target)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, m := range muts {
			jobs <- m
		}
		close(jobs)
	}()

	start := time.Now()
	var all []sweepResult
	var baseline sweepResult
	for res := range results {
		if res.mutation.index < 0 {
			baseline = res
		}
		all = append(all, res)
	}
	rank(all)
	elapsed := time.Since(start)

	fmt.Printf("\nBaseline: mean=%.4f range=[%.3f,%.3f] distance=%.4f\n",
		baseline.lastMean, baseline.minProb, baseline.maxProb, baseline.distance)
	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		res := all[i]
		fmt.Printf("%2d) %s mean=%.4f range=[%.3f,%.3f] distance=%.4f rules=%s\n",
			i+1, res.mutation, res.lastMean, res.minProb, res.maxProb, res.distance, res.table)
	}
}

// mutations lists the base table plus every single-entry change.
func mutations(base entombed.Table) []mutation {
	out := []mutation{{index: -1}}
	for i, cur := range base {
		for _, d := range []entombed.Decision{entombed.NoWall, entombed.Wall, entombed.RandomChoice} {
			if d != cur {
				out = append(out, mutation{index: i, decision: d})
			}
		}
	}
	return out
}

func evaluate(base entombed.Table, m mutation, rows, columns int, target float64) sweepResult {
	table := base
	if m.index >= 0 {
		table[m.index] = m.decision
	}
	matrix, err := entombed.Propagate(&table, rows, columns)
	if err != nil {
		panic(err)
	}
	last := matrix.Rows() - 1
	res := sweepResult{mutation: m, table: table, minProb: 1}
	for _, p := range matrix.Interior(last) {
		res.minProb = math.Min(res.minProb, p)
		res.maxProb = math.Max(res.maxProb, p)
	}
	res.lastMean = matrix.RowMean(last)
	res.distance = math.Abs(res.lastMean - target)
	return res
}

// rank orders results by distance, breaking ties by mutation position so the
// output is stable across worker schedules.
func rank(all []sweepResult) {
	sort.Slice(all, func(i, j int) bool {
		if all[i].distance != all[j].distance {
			return all[i].distance < all[j].distance
		}
		if all[i].mutation.index != all[j].mutation.index {
			return all[i].mutation.index < all[j].mutation.index
		}
		return all[i].mutation.decision < all[j].mutation.decision
	})
}
