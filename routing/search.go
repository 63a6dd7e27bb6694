// File: search.go
// Role: bounded best-first enumeration of simple paths for one alias pair.
// Complexity:
//   - Each expansion costs O(d + L) for degree d and path length L (cycle
//     check walks the path). Expansions are capped by MaxExpansions.

package routing

import (
	"container/heap"
	"context"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/metroroute/core"
	"github.com/katalvlaran/metroroute/dijkstra"
)

// ctxCheckEvery is how many expansions pass between context checks.
const ctxCheckEvery = 1024

// pathNode is a partial path stored as a parent-linked list, so extensions
// share their prefix.
type pathNode struct {
	node   string
	parent *pathNode
	via    *core.Edge // edge from parent; nil at the root
	weight int64      // accumulated
	hops   int
}

// contains reports whether id already lies on the path.
func (p *pathNode) contains(id string) bool {
	for n := p; n != nil; n = n.parent {
		if n.node == id {
			return true
		}
	}

	return false
}

// result materializes the path from its root.
func (p *pathNode) result() PathResult {
	n := p.hops + 1
	res := PathResult{
		Nodes:      make([]string, n),
		Cumulative: make([]int64, n),
		Total:      p.weight,
		Legs:       make([]Leg, p.hops),
	}
	for cur, i := p, n-1; cur != nil; cur, i = cur.parent, i-1 {
		res.Nodes[i] = cur.node
		res.Cumulative[i] = cur.weight
		if cur.via == nil {
			continue
		}
		e := cur.via
		res.Legs[i-1] = Leg{From: cur.parent.node, To: cur.node, Kind: e.Kind, Line: e.Line, Weight: e.Weight}
		if e.Kind == core.LineSegment && !e.Timed {
			res.Incomplete = true
		}
	}

	return res
}

// candidate is one emitted path with its merge keys.
type candidate struct {
	total  int64
	pair   int
	order  int
	result PathResult
}

// pairStats reports how one alias-pair search ended.
type pairStats struct {
	expansions int
	truncated  bool
}

// searcher holds the state of one alias-pair search.
type searcher struct {
	ctx   context.Context
	adj   map[string][]*core.Edge
	cfg   *engineConfig
	pair  aliasPair
	k     int
	lb    lowerBounds
	bound *kthBound

	pq  pathPQ
	seq uint64
}

// run pops partial paths in order of accumulated weight until k local
// candidates exist, the queue drains, the next weight exceeds the shared
// K-th best bound, or the expansion cap is hit.
func (s *searcher) run() ([]candidate, pairStats, error) {
	var (
		out   []candidate
		st    pairStats
		local = make(map[string]struct{}, s.k)
	)

	if s.pair.from == s.pair.to {
		root := &pathNode{node: s.pair.from}
		s.bound.offer(0)
		return []candidate{{total: 0, pair: s.pair.idx, result: root.result()}}, st, nil
	}
	if s.lb.weight[s.pair.from] == dijkstra.Unreachable {
		return nil, st, nil
	}

	heap.Init(&s.pq)
	s.push(&pathNode{node: s.pair.from})

	for s.pq.Len() > 0 && len(out) < s.k {
		item := heap.Pop(&s.pq).(*pathItem)
		p := item.path
		if p.weight > s.bound.value() {
			break
		}

		if p.node == s.pair.to {
			key := pathKey(p)
			if _, dup := local[key]; dup {
				continue
			}
			local[key] = struct{}{}
			out = append(out, candidate{total: p.weight, pair: s.pair.idx, order: len(out), result: p.result()})
			s.bound.offer(p.weight)
			continue
		}

		if st.expansions >= s.cfg.maxExpansions {
			st.truncated = true
			break
		}
		st.expansions++
		if st.expansions%ctxCheckEvery == 0 {
			if err := s.ctx.Err(); err != nil {
				return nil, st, err
			}
		}
		s.expand(p)
	}

	return out, st, nil
}

// expand pushes every admissible one-edge extension of p.
func (s *searcher) expand(p *pathNode) {
	limit := s.bound.value()
	for _, e := range s.adj[p.node] {
		if !s.cfg.usable(e) {
			continue
		}
		v := e.Other(p.node)
		if p.contains(v) {
			continue
		}
		h := s.lb.weight[v]
		if h == dijkstra.Unreachable {
			continue
		}
		// A sum past MaxInt64 cannot rank; dropping it keeps totals non-negative.
		if e.Weight > math.MaxInt64-p.weight || h > math.MaxInt64-p.weight-e.Weight {
			continue
		}
		w := p.weight + e.Weight
		if limit != math.MaxInt64 && w+h > limit {
			continue
		}
		hops := p.hops + 1
		if s.cfg.maxHops > 0 {
			hv, ok := s.lb.hops[v]
			if !ok || hops+hv > s.cfg.maxHops {
				continue
			}
		}
		s.push(&pathNode{node: v, parent: p, via: e, weight: w, hops: hops})
	}
}

func (s *searcher) push(p *pathNode) {
	s.seq++
	heap.Push(&s.pq, &pathItem{path: p, seq: s.seq})
}

// pathKey is the node sequence of p, for duplicate detection.
func pathKey(p *pathNode) string {
	ids := make([]string, p.hops+1)
	for cur, i := p, p.hops; cur != nil; cur, i = cur.parent, i-1 {
		ids[i] = cur.node
	}

	return strings.Join(ids, "\x00")
}

// pathItem orders partial paths by weight, then push sequence.
type pathItem struct {
	path *pathNode
	seq  uint64
}

type pathPQ []*pathItem

func (pq pathPQ) Len() int { return len(pq) }

func (pq pathPQ) Less(i, j int) bool {
	if pq[i].path.weight != pq[j].path.weight {
		return pq[i].path.weight < pq[j].path.weight
	}

	return pq[i].seq < pq[j].seq
}

func (pq pathPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *pathPQ) Push(x interface{}) { *pq = append(*pq, x.(*pathItem)) }

func (pq *pathPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}

// kthBound tracks the k smallest candidate weights offered by all workers
// of one query. value is the k-th smallest, or MaxInt64 until k exist.
type kthBound struct {
	mu   sync.Mutex
	k    int
	best []int64 // ascending, len ≤ k
}

func newKthBound(k int) *kthBound {
	return &kthBound{k: k, best: make([]int64, 0, k)}
}

func (b *kthBound) offer(w int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.best) == b.k && w >= b.best[b.k-1] {
		return
	}
	i := sort.Search(len(b.best), func(i int) bool { return b.best[i] > w })
	if len(b.best) < b.k {
		b.best = append(b.best, 0)
	}
	copy(b.best[i+1:], b.best[i:])
	b.best[i] = w
}

func (b *kthBound) value() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.best) < b.k {
		return math.MaxInt64
	}

	return b.best[b.k-1]
}
