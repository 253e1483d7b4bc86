package recommender

import (
	"math"
	"reflect"
	"testing"
)

func TestTokenizeFiltersStopWordsAndShortTokens(t *testing.T) {
	got := tokenize("The cat and a dog, in X!")
	want := []string{"cat", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tokenize: got %v, want %v", got, want)
	}
}

func TestFitTransformVocabularyAndShape(t *testing.T) {
	v := NewCourseVectorizer(100)
	matrix := v.FitTransform([]string{
		"programming basics programming",
		"data structures",
		"",
	})

	if len(matrix) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(matrix))
	}
	// vocabulario: basics, data, programming, structures
	if v.NumFeatures() != 4 {
		t.Fatalf("expected 4 features, got %d", v.NumFeatures())
	}
	for i, row := range matrix {
		if len(row) != v.NumFeatures() {
			t.Errorf("row %d has %d columns, want %d", i, len(row), v.NumFeatures())
		}
	}
	// documento vacío degrada a vector cero, no a error
	for _, x := range matrix[2] {
		if x != 0 {
			t.Fatalf("empty document should produce a zero vector, got %v", matrix[2])
		}
	}
}

func TestFitTransformBoundsVocabulary(t *testing.T) {
	v := NewCourseVectorizer(2)
	v.FitTransform([]string{
		"alpha alpha alpha beta beta gamma",
	})

	if v.NumFeatures() != 2 {
		t.Fatalf("expected vocabulary capped at 2, got %d", v.NumFeatures())
	}
	// se quedan los términos más frecuentes del corpus
	if _, ok := v.vocabulary["alpha"]; !ok {
		t.Errorf("expected alpha in capped vocabulary")
	}
	if _, ok := v.vocabulary["beta"]; !ok {
		t.Errorf("expected beta in capped vocabulary")
	}
	if _, ok := v.vocabulary["gamma"]; ok {
		t.Errorf("gamma should have been dropped by max features")
	}
}

func TestTransformTextOutOfVocabularyIsSilent(t *testing.T) {
	v := NewCourseVectorizer(100)
	v.FitTransform([]string{"databases indexing"})

	vec := v.TransformText("quantum blockchain")
	if len(vec) != v.NumFeatures() {
		t.Fatalf("expected %d dims, got %d", v.NumFeatures(), len(vec))
	}
	for _, x := range vec {
		if x != 0 {
			t.Fatalf("out-of-vocabulary text should project to zero, got %v", vec)
		}
	}
}

func TestRowsAreL2Normalized(t *testing.T) {
	v := NewCourseVectorizer(100)
	matrix := v.FitTransform([]string{
		"networks routing protocols",
		"networks security",
	})

	for i, row := range matrix {
		var norm float64
		for _, x := range row {
			norm += x * x
		}
		norm = math.Sqrt(norm)
		if math.Abs(norm-1) > 1e-9 {
			t.Errorf("row %d norm = %v, want 1", i, norm)
		}
	}
}

func TestFitTransformIsDeterministic(t *testing.T) {
	corpus := []string{
		"machine learning models",
		"learning algorithms",
		"database systems",
	}

	a := NewCourseVectorizer(100).FitTransform(corpus)
	b := NewCourseVectorizer(100).FitTransform(corpus)

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("two fits over the same corpus differ")
	}
}
