package main

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/FBemf/freecell/internal/board"
)

// StatsCmd deals a range of seeds and reports how they open: how many cards
// drain to the foundations immediately, and how many aces start on top of a
// column. Useful for sanity-checking the shuffle's spread.
type StatsCmd struct {
	Start   uint64 `help:"First seed to deal" default:"0"`
	Count   int    `help:"Number of seeds to deal" default:"1000"`
	Workers int    `short:"w" help:"Parallel workers" default:"8"`
}

type dealStats struct {
	openingDrain int
	topAces      int
}

func (s *StatsCmd) Run() error {
	if s.Count <= 0 {
		return fmt.Errorf("count must be positive")
	}

	var (
		mu      sync.Mutex
		byDrain = map[int]int{}
		byAces  = map[int]int{}
	)

	var g errgroup.Group
	g.SetLimit(s.Workers)
	for i := 0; i < s.Count; i++ {
		seed := s.Start + uint64(i)
		g.Go(func() error {
			st := measureDeal(seed)
			mu.Lock()
			byDrain[st.openingDrain]++
			byAces[st.topAces]++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("dealt %d seeds starting at %d\n\n", s.Count, s.Start)
	fmt.Println("cards auto-moved from the opening deal:")
	printDistribution(byDrain, s.Count)
	fmt.Println("\naces dealt onto column tops:")
	printDistribution(byAces, s.Count)
	return nil
}

// measureDeal deals one seed and drains its opening auto-moves
func measureDeal(seed uint64) dealStats {
	b := board.NewDeal(seed)

	var st dealStats
	for _, column := range b.View().Columns {
		if len(column) > 0 && column[len(column)-1].Rank == 1 {
			st.topAces++
		}
	}
	for {
		next, ok := b.AutoMoveToFoundations()
		if !ok {
			break
		}
		b = next
		st.openingDrain++
	}
	return st
}

func printDistribution(dist map[int]int, total int) {
	max := 0
	for k := range dist {
		if k > max {
			max = k
		}
	}
	for k := 0; k <= max; k++ {
		n := dist[k]
		if n == 0 {
			continue
		}
		fmt.Printf("  %2d: %6d (%5.1f%%)\n", k, n, 100*float64(n)/float64(total))
	}
}
