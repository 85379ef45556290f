package service

import (
	"math"
	"slices"

	"github.com/montanaflynn/stats"
)

// ScoreAnswers rates an answer mapping; lower is better. Each answer is
// reduced to the fraction of the total it retains, and the question scores
// the geometric mean of those fractions times their geometric standard
// deviation.
//
// An empty mapping scores +Inf. A mapping where every answer retains
// everything scores exactly 1, but scores above 1 are possible for
// non-useless questions, so uselessness is tracked separately.
func ScoreAnswers(answers AnswerMap, total int) float64 {
	if len(answers) == 0 || total <= 0 {
		return math.Inf(1)
	}

	// Sorted so equal multisets score bit-for-bit equal regardless of map order.
	counts := make([]int, 0, len(answers))
	for _, chars := range answers {
		counts = append(counts, len(chars))
	}
	slices.Sort(counts)

	// Todo en espacio logaritmico: el producto de cientos de fracciones
	// chicas da underflow.
	logs := make(stats.Float64Data, 0, len(counts))
	for _, n := range counts {
		logs = append(logs, math.Log(float64(n)/float64(total)))
	}

	meanLog, err := stats.Mean(logs)
	if err != nil {
		return math.Inf(1)
	}
	spread, err := stats.StandardDeviationPopulation(logs)
	if err != nil {
		return math.Inf(1)
	}
	return math.Exp(meanLog + spread)
}
