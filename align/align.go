// Package align implements global sequence alignment.
//
// Align is a Needleman-Wunsch aligner over arbitrary element types. It knows
// nothing about paths; callers supply the scoring function. Gaps score zero.
package align

import "slices"

// Gap marks an aligned position where one sequence has no element.
const Gap = -1

// gapScore is the score of aligning an element against a gap.
const gapScore = 0.0

// Pair is one column of an alignment. From and To index into the input
// sequences, or are Gap.
type Pair struct {
	From int
	To   int
}

// Result is an optimal global alignment of two sequences.
type Result struct {
	Pairs []Pair
	Score float64
}

// FromGaps reports whether the alignment inserts gaps into the from sequence.
func (r Result) FromGaps() bool {
	for _, p := range r.Pairs {
		if p.From == Gap {
			return true
		}
	}
	return false
}

// ToGaps reports whether the alignment inserts gaps into the to sequence.
func (r Result) ToGaps() bool {
	for _, p := range r.Pairs {
		if p.To == Gap {
			return true
		}
	}
	return false
}

// Align returns an optimal global alignment of from and to. score rates
// aligning two elements with each other; higher is better. When several
// alignments score the same, traceback prefers matching elements, then
// gaps in to, then gaps in from.
func Align[T any](from, to []T, score func(a, b T) float64) Result {
	n, m := len(from), len(to)

	// table[i][j] is the best score aligning from[:i] with to[:j].
	table := make([][]float64, n+1)
	for i := range table {
		table[i] = make([]float64, m+1)
		table[i][0] = float64(i) * gapScore
	}
	for j := 0; j <= m; j++ {
		table[0][j] = float64(j) * gapScore
	}

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			match := table[i-1][j-1] + score(from[i-1], to[j-1])
			del := table[i-1][j] + gapScore
			ins := table[i][j-1] + gapScore
			table[i][j] = max(match, del, ins)
		}
	}

	pairs := make([]Pair, 0, n+m)
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && table[i][j] == table[i-1][j-1]+score(from[i-1], to[j-1]):
			i, j = i-1, j-1
			pairs = append(pairs, Pair{From: i, To: j})
		case i > 0 && table[i][j] == table[i-1][j]+gapScore:
			i--
			pairs = append(pairs, Pair{From: i, To: Gap})
		default:
			j--
			pairs = append(pairs, Pair{From: Gap, To: j})
		}
	}
	slices.Reverse(pairs)
	return Result{Pairs: pairs, Score: table[n][m]}
}
