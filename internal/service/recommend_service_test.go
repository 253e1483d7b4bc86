package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/recommender"
)

func TestCacheKeyCoversAllScoringParams(t *testing.T) {
	base := RecRequest{
		StudentID:           "S001",
		CompletedCourses:    []string{"CS101", "CS102"},
		InterestTags:        []string{"ml"},
		PreferredDifficulty: "medium",
		AllowFutureCourses:  false,
		TopK:                5,
	}

	if cacheKey(base) != cacheKey(base) {
		t.Fatal("cacheKey must be deterministic")
	}

	variants := []RecRequest{base, base, base, base, base, base}
	variants[1].CompletedCourses = []string{"CS101"}
	variants[2].InterestTags = []string{"databases"}
	variants[3].PreferredDifficulty = "hard"
	variants[4].AllowFutureCourses = true
	variants[5].TopK = 10

	baseKey := cacheKey(base)
	for i, v := range variants[1:] {
		if cacheKey(v) == baseKey {
			t.Errorf("variant %d should produce a different cache key", i+1)
		}
	}

	// refresh no cambia la key: solo decide si se consulta el cache
	refreshed := base
	refreshed.Refresh = true
	if cacheKey(refreshed) != baseKey {
		t.Error("refresh must not change the cache key")
	}
}

// El servicio se puede testear sin Mongo ni Redis: sin student_id no toca
// el repo de perfiles, el historial es best-effort con repo nil y el
// cliente de Redis nil degrada a no-op.
func TestRecommendTopKBounds(t *testing.T) {
	catalog := make([]models.CourseDoc, 60)
	for i := range catalog {
		catalog[i] = models.CourseDoc{
			CourseID:    fmt.Sprintf("CS%03d", i),
			CourseName:  fmt.Sprintf("Course %d", i),
			Description: "systems programming networks",
			Difficulty:  1 + i%5,
		}
	}
	svc := NewRecommendService(recommender.NewEngine(catalog, 500), nil, nil)

	// top_k explícito en 0: lista vacía, no el default
	items, err := svc.Recommend(context.Background(), RecRequest{
		InterestTags: []string{"systems"},
		TopK:         0,
		Refresh:      true,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("top_k=0 should yield empty result, got %d items", len(items))
	}

	// pedir más que MaxTopK se acota
	items, err = svc.Recommend(context.Background(), RecRequest{
		InterestTags: []string{"systems"},
		TopK:         1000,
		Refresh:      true,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != MaxTopK {
		t.Fatalf("expected clamp to MaxTopK=%d, got %d items", MaxTopK, len(items))
	}
}
