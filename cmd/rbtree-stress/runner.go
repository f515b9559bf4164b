package main

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/panjf2000/ants/v2"

	"github.com/tinkernels/rbtree"
)

// Config describes one stress run.
type Config struct {
	Trees    int
	Ops      int
	KeySpace int
	Workers  int
	Seed     int64
	MaxNodes int
}

// Report sums up a successful run.
type Report struct {
	Inserts   int
	Erases    int
	Rejected  int
	MaxHeight int
	MaxLen    int
}

type job struct {
	id     int
	cfg    Config
	report Report
	err    error
	wg     *sync.WaitGroup
}

// Run drives cfg.Trees independent trees through cfg.Ops random operations
// each, checking every tree after every operation. Each tree is touched by
// a single pool worker only.
func Run(cfg Config) (Report, error) {
	if cfg.Trees <= 0 || cfg.Ops < 0 || cfg.KeySpace <= 0 || cfg.Workers <= 0 {
		return Report{}, fmt.Errorf("invalid config %+v", cfg)
	}

	pool, err := ants.NewPoolWithFunc(cfg.Workers, func(payload interface{}) {
		j, ok := payload.(*job)
		if !ok {
			return
		}
		defer j.wg.Done()
		j.err = j.run()
	})
	if err != nil {
		return Report{}, fmt.Errorf("can't create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	jobs := make([]*job, cfg.Trees)
	for i := range jobs {
		jobs[i] = &job{id: i, cfg: cfg, wg: &wg}
		wg.Add(1)
		if err := pool.Invoke(jobs[i]); err != nil {
			wg.Done()
			jobs[i].err = err
		}
	}
	wg.Wait()

	var total Report
	for _, j := range jobs {
		if j.err != nil {
			return total, fmt.Errorf("tree %d: %w", j.id, j.err)
		}
		total.Inserts += j.report.Inserts
		total.Erases += j.report.Erases
		total.Rejected += j.report.Rejected
		if j.report.MaxHeight > total.MaxHeight {
			total.MaxHeight = j.report.MaxHeight
		}
		if j.report.MaxLen > total.MaxLen {
			total.MaxLen = j.report.MaxLen
		}
	}
	return total, nil
}

type liveKey struct {
	h rbtree.Handle
	k rbtree.Key
}

func (j *job) run() error {
	r := rand.New(rand.NewSource(j.cfg.Seed + int64(j.id)))
	tree := rbtree.NewWithOptions(&rbtree.Options{MaxNodes: j.cfg.MaxNodes, Logger: log})
	defer tree.Destroy()
	ref := newMultiset()
	var live []liveKey

	for op := 0; op < j.cfg.Ops; op++ {
		if len(live) == 0 || r.Intn(10) < 6 {
			k := r.Intn(j.cfg.KeySpace)
			h, err := tree.Insert(k)
			if err != nil {
				if j.cfg.MaxNodes > 0 && tree.Len() == j.cfg.MaxNodes {
					j.report.Rejected++
					continue
				}
				return fmt.Errorf("op %d: insert %d: %w", op, k, err)
			}
			live = append(live, liveKey{h, k})
			ref.add(k)
			j.report.Inserts++
		} else {
			i := r.Intn(len(live))
			if err := tree.Erase(live[i].h); err != nil {
				return fmt.Errorf("op %d: erase %d: %w", op, live[i].k, err)
			}
			ref.remove(live[i].k)
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
			j.report.Erases++
		}

		if err := check(tree, ref); err != nil {
			return fmt.Errorf("op %d: %w", op, err)
		}
		if h := tree.Height(); h > j.report.MaxHeight {
			j.report.MaxHeight = h
		}
		if n := tree.Len(); n > j.report.MaxLen {
			j.report.MaxLen = n
		}
	}
	log.Debugf("tree %d done: %+v", j.id, j.report)
	return nil
}

func check(tree *rbtree.Tree, ref *multiset) error {
	if err := tree.Verify(); err != nil {
		return err
	}
	n := tree.Len()
	if n != ref.size {
		return fmt.Errorf("tree holds %d keys, expected %d", n, ref.size)
	}
	if bound := 2 * math.Log2(float64(n+1)); float64(tree.Height()) > bound {
		return fmt.Errorf("height %d of %d nodes exceeds %.2f", tree.Height(), n, bound)
	}
	got, want := tree.Keys(), ref.keys()
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("key %d is %d, expected %d", i, got[i], want[i])
		}
	}
	return nil
}

// multiset counts keys in a gods tree.
type multiset struct {
	counts *redblacktree.Tree
	size   int
}

func newMultiset() *multiset {
	return &multiset{counts: redblacktree.NewWithIntComparator()}
}

func (m *multiset) add(k int) {
	c, _ := m.counts.Get(k)
	n, _ := c.(int)
	m.counts.Put(k, n+1)
	m.size++
}

func (m *multiset) remove(k int) {
	c, found := m.counts.Get(k)
	if !found {
		return
	}
	if n := c.(int); n > 1 {
		m.counts.Put(k, n-1)
	} else {
		m.counts.Remove(k)
	}
	m.size--
}

func (m *multiset) keys() []int {
	keys := make([]int, 0, m.size)
	it := m.counts.Iterator()
	for it.Next() {
		for i := 0; i < it.Value().(int); i++ {
			keys = append(keys, it.Key().(int))
		}
	}
	return keys
}
