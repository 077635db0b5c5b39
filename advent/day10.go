package main

import (
	"fmt"
	"io"
	"log"
	"math/big"
	"os"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
)

func init() {
	register("10", day10)
}

func day10(cfg *config, args []string) {
	adapters, err := readIntsFile(cfg.inputPath(args, "day10.txt"))
	if err != nil {
		log.Fatal(err)
	}
	c := newChain(adapters)
	hist, bad := c.gaps()
	for _, ge := range bad {
		log.Printf("not possible: %s", ge)
	}
	c.report(os.Stdout, hist)
}

// maxGap is the largest joltage step an adapter accepts.
const maxGap = 3

// A chain is the sorted adapter joltages bracketed by the outlet (0) and the
// device (highest adapter + 3).
type chain []int

func newChain(adapters []int) chain {
	c := make(chain, 0, len(adapters)+2)
	c = append(c, 0)
	c = append(c, adapters...)
	sort.Ints(c[1:])
	return append(c, c[len(c)-1]+maxGap)
}

// gapHistogram maps a joltage difference to the number of adjacent pairs in
// the chain with that difference.
type gapHistogram map[int]int

func (h gapHistogram) total() int {
	var n int
	for _, count := range h {
		n += count
	}
	return n
}

func (h gapHistogram) product() int {
	return h[1] * h[3]
}

func (h gapHistogram) String() string {
	gaps := make([]int, 0, len(h))
	for gap := range h {
		gaps = append(gaps, gap)
	}
	sort.Ints(gaps)
	parts := make([]string, len(gaps))
	for i, gap := range gaps {
		parts[i] = fmt.Sprintf("%d:%d", gap, h[gap])
	}
	return strings.Join(parts, " ")
}

// A gapError is an adjacent pair that no adapter can bridge.
type gapError struct {
	index    int // position of from in the chain
	from, to int
}

func (e gapError) gap() int { return e.to - e.from }

func (e gapError) String() string {
	return fmt.Sprintf("gap of %d between %d and %d (position %d)", e.gap(), e.from, e.to, e.index)
}

// gaps counts the differences between adjacent joltages. Differences outside
// [0, maxGap] are returned separately and not counted.
func (c chain) gaps() (gapHistogram, []gapError) {
	h := gapHistogram{1: 0, 2: 0, 3: 0}
	var bad []gapError
	for i := 0; i+1 < len(c); i++ {
		d := c[i+1] - c[i]
		if d < 0 || d > maxGap {
			bad = append(bad, gapError{index: i, from: c[i], to: c[i+1]})
			continue
		}
		h[d]++
	}
	return h, bad
}

// arrangements returns the number of ways to go from the first to the last
// joltage in c, each step skipping ahead at most maxGap jolts.
func (c chain) arrangements() *big.Int {
	memo := make(map[int]*big.Int, len(c))
	var count func(i int) *big.Int
	count = func(i int) *big.Int {
		if i == len(c)-1 {
			return big.NewInt(1)
		}
		if n, ok := memo[i]; ok {
			return n
		}
		n := new(big.Int).Set(count(i + 1))
		for j := i + 2; j <= i+maxGap && j < len(c); j++ {
			if c[j]-c[i] <= maxGap {
				n.Add(n, count(j))
			}
		}
		memo[i] = n
		return n
	}
	return count(0)
}

func (c chain) report(w io.Writer, h gapHistogram) {
	fmt.Fprintln(w, "Adapter chain:", []int(c))
	fmt.Fprintln(w, "Length of chain:", len(c))
	fmt.Fprintln(w, "Difference counts:", h)
	fmt.Fprintln(w, "1-diff x 3-diff:", humanize.Comma(int64(h.product())))
	fmt.Fprintln(w, "Arrangements:", humanize.BigComma(c.arrangements()))
}
