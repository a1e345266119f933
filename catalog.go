package main

import (
	"math"
	"strings"

	"github.com/stackoverflowed/judge-harness/harness"
)

// A program pairs a function under test with the vector file that judges
// it. The catalog exists to exercise the harness surface; it is not a
// problem library.
type program struct {
	name       string
	file       string
	fn         interface{}
	comparator interface{}
}

var catalog = []program{
	{name: "sum", file: "sum.tsv", fn: sum},
	{name: "reverse-words", file: "reverse_words.tsv", fn: reverseWords},
	{name: "running-average", file: "running_average.tsv", fn: runningAverage, comparator: closeEnough},
	{name: "matrix-transpose", file: "matrix_transpose.tsv", fn: transpose},
	{name: "require-positive", file: "require_positive.tsv", fn: requirePositive},
}

func sum(a, b int) int { return a + b }

func reverseWords(s string) string {
	words := strings.Fields(s)
	for i, j := 0, len(words)-1; i < j; i, j = i+1, j-1 {
		words[i], words[j] = words[j], words[i]
	}
	return strings.Join(words, " ")
}

func runningAverage(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var total float64
	for _, x := range xs {
		total += x
	}
	return total / float64(len(xs))
}

func closeEnough(expected, actual float64) bool {
	return math.Abs(expected-actual) <= 1e-6*math.Max(1, math.Abs(expected))
}

func transpose(m [][]int) [][]int {
	if len(m) == 0 {
		return [][]int{}
	}
	out := make([][]int, len(m[0]))
	for j := range out {
		out[j] = make([]int, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return out
}

func requirePositive(n int) {
	if n <= 0 {
		harness.Failf("%d is not positive", n)
	}
}
