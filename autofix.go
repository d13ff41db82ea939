package vpath

import (
	"math"
	"runtime"
	"slices"

	"github.com/gogpu/vpath/align"
	"github.com/gogpu/vpath/internal/parallel"
)

// parallelCandidates is the number of alignment candidates from which
// scoring moves onto a worker pool.
const parallelCandidates = 8

// alignScore rates pairing two commands during morph alignment: commands
// that share a verb or can be converted into each other score higher the
// closer their end points are; anything else is a mismatch.
func alignScore(a, b Command) float64 {
	if a.verb != b.verb && !a.CanConvertTo(b.verb) && !b.CanConvertTo(a.verb) {
		return -1
	}
	return 1 / math.Max(1, a.End().Distance(b.End()))
}

// AutoFix makes subpath sub of from and to structurally compatible so the
// two paths can be interpolated. It tries from as is, every rotation of a
// closed subpath and the reversal of each, keeps the candidate that aligns
// best with to, pads both sides with splits where the alignment has gaps,
// and finally converts mismatched verbs.
func AutoFix(sub int, from, to *Path) (*Path, *Path, error) {
	if err := checkSubPath(sub, from, to); err != nil {
		return nil, nil, err
	}

	candidates, err := alignCandidates(sub, from)
	if err != nil {
		return nil, nil, err
	}
	results := scoreCandidates(sub, candidates, to.subs[sub].cmds)
	var (
		best     *Path
		bestAlgn align.Result
	)
	for i, res := range results {
		if best == nil || res.Score > bestAlgn.Score {
			best, bestAlgn = candidates[i], res
		}
	}
	Logger().Debug("vpath: aligned subpath",
		"subpath", sub, "candidates", len(candidates), "score", bestAlgn.Score)

	fromSplits, toSplits := gapSplits(bestAlgn)
	if from, err = applySplits(best, sub, fromSplits); err != nil {
		return nil, nil, err
	}
	if to, err = applySplits(to, sub, toSplits); err != nil {
		return nil, nil, err
	}
	return AutoConvert(sub, from, to)
}

func checkSubPath(sub int, paths ...*Path) error {
	for _, p := range paths {
		if sub < 0 || sub >= len(p.subs) {
			return indexError("subpath", sub, len(p.subs))
		}
	}
	return nil
}

// alignCandidates returns p, each rotation of subpath sub if it is closed,
// and the reversal of every one of those.
func alignCandidates(sub int, p *Path) ([]*Path, error) {
	candidates := []*Path{p}
	if s := p.subs[sub]; s.IsClosed() {
		for i := 1; i <= s.Len()-2; i++ {
			c, err := p.Mutate().ShiftSubPathBack(sub, i).Build()
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, c)
		}
	}
	for _, c := range slices.Clone(candidates) {
		r, err := c.Mutate().ReverseSubPath(sub).Build()
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, r)
	}
	return candidates, nil
}

// scoreCandidates aligns subpath sub of every candidate with toCmds. The
// results are in candidate order.
func scoreCandidates(sub int, candidates []*Path, toCmds []Command) []align.Result {
	score := func(c *Path) align.Result {
		return align.Align(c.subs[sub].cmds, toCmds, alignScore)
	}
	if len(candidates) < parallelCandidates {
		results := make([]align.Result, len(candidates))
		for i, c := range candidates {
			results[i] = score(c)
		}
		return results
	}
	pool := parallel.NewWorkerPool(min(len(candidates), runtime.GOMAXPROCS(0)))
	defer pool.Close()
	return parallel.Map(pool, candidates, score)
}

// gapSplit asks for a command to be split into count+1 pieces.
type gapSplit struct {
	cmd   int
	count int
}

// gapSplits finds the maximal runs of gaps on each side of an alignment.
// A run is anchored at the next real command of its side.
func gapSplits(res align.Result) (from, to []gapSplit) {
	return runsOf(res.Pairs, func(p align.Pair) int { return p.From }),
		runsOf(res.Pairs, func(p align.Pair) int { return p.To })
}

func runsOf(pairs []align.Pair, side func(align.Pair) int) []gapSplit {
	var (
		runs []gapSplit
		next int // real commands seen so far
		run  int
	)
	flush := func() {
		if run > 0 {
			runs = append(runs, gapSplit{cmd: next, count: run})
			run = 0
		}
	}
	for _, p := range pairs {
		if side(p) == align.Gap {
			run++
			continue
		}
		flush()
		next++
	}
	flush()
	return runs
}

// applySplits performs the splits of one side, from the last run to the
// first so that earlier indices stay valid.
func applySplits(p *Path, sub int, runs []gapSplit) (*Path, error) {
	if len(runs) == 0 {
		return p, nil
	}
	numCmds := p.subs[sub].Len()
	m := p.Mutate()
	for i := len(runs) - 1; i >= 0; i-- {
		r := runs[i]
		cmd := min(max(r.cmd, 1), numCmds-1)
		ts := make([]float64, r.count)
		for j := range ts {
			ts[j] = float64(j+1) / float64(r.count+1)
		}
		m.SplitCommand(sub, cmd, ts...)
	}
	return m.Build()
}

// AutoConvert converts commands of subpath sub so that from and to have
// matching verbs wherever a conversion is possible. Commands of from are
// converted to match to first, then the other way round. If the subpaths
// have different lengths the inputs are returned unchanged.
func AutoConvert(sub int, from, to *Path) (*Path, *Path, error) {
	if err := checkSubPath(sub, from, to); err != nil {
		return nil, nil, err
	}
	fs, ts := from.subs[sub], to.subs[sub]
	if fs.Len() != ts.Len() {
		return from, to, nil
	}
	var err error
	if from, err = convertToMatch(sub, from, ts); err != nil {
		return nil, nil, err
	}
	if to, err = convertToMatch(sub, to, from.subs[sub]); err != nil {
		return nil, nil, err
	}
	return from, to, nil
}

// convertToMatch converts each command of subpath sub of p to the verb of
// the corresponding command of target when it can.
func convertToMatch(sub int, p *Path, target SubPath) (*Path, error) {
	m := p.Mutate()
	changed := false
	for i, c := range p.subs[sub].cmds {
		want := target.cmds[i].verb
		if c.verb != want && c.CanConvertTo(want) {
			m.ConvertCommand(sub, i, want)
			changed = true
		}
	}
	if !changed {
		return p, nil
	}
	return m.Build()
}

// AutoFixAll balances the number of subpaths of from and to with collapsing
// subpaths and then auto-fixes every subpath. A collapsing subpath sits at
// the center of the subpath it pairs with and has as many commands.
func AutoFixAll(from, to *Path) (*Path, *Path, error) {
	var err error
	if from, err = padSubPaths(from, to); err != nil {
		return nil, nil, err
	}
	if to, err = padSubPaths(to, from); err != nil {
		return nil, nil, err
	}
	for i := range from.subs {
		if from, to, err = AutoFix(i, from, to); err != nil {
			return nil, nil, err
		}
	}
	return from, to, nil
}

// padSubPaths appends collapsing subpaths to p until it has as many
// subpaths as other.
func padSubPaths(p, other *Path) (*Path, error) {
	if len(p.subs) >= len(other.subs) {
		return p, nil
	}
	m := p.Mutate()
	for _, s := range other.subs[len(p.subs):] {
		m.AddCollapsingSubPath(s.BoundingBox().Center(), s.Len())
	}
	return m.Build()
}
