package recommender

import (
	"math"
	"testing"
)

func TestDifficultyWeightBands(t *testing.T) {
	cases := []struct {
		preferred  string
		difficulty int
		want       float64
	}{
		{"", 3, 1.0},
		{"unknown", 3, 1.0},
		{"easy", 1, 1.1},
		{"easy", 2, 1.1},
		{"easy", 3, 0.9},
		{"medium", 1, 0.9},
		{"medium", 2, 1.1},
		{"medium", 4, 1.1},
		{"medium", 5, 0.9},
		{"hard", 3, 0.9},
		{"hard", 4, 1.1},
		{"hard", 5, 1.1},
	}

	for _, c := range cases {
		if got := difficultyWeight(c.difficulty, c.preferred); got != c.want {
			t.Errorf("difficultyWeight(%d, %q) = %v, want %v", c.difficulty, c.preferred, got, c.want)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	a := []float64{1, 0, 0}
	b := []float64{0, 1, 0}
	if got := cosineSimilarity(a, b); got != 0 {
		t.Errorf("orthogonal vectors: got %v, want 0", got)
	}

	if got := cosineSimilarity(a, a); math.Abs(got-1) > 1e-12 {
		t.Errorf("identical vectors: got %v, want 1", got)
	}

	// vector cero no divide por cero
	zero := []float64{0, 0, 0}
	if got := cosineSimilarity(a, zero); got != 0 {
		t.Errorf("zero vector: got %v, want 0", got)
	}

	// el coseno ignora magnitud
	scaled := []float64{3, 0, 0}
	if got := cosineSimilarity(a, scaled); math.Abs(got-1) > 1e-12 {
		t.Errorf("scaled vector: got %v, want 1", got)
	}
}
