package recommender

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jcljr27/course-recommender-backend/internal/models"
)

// Catálogo mínimo con una cadena de prerequisitos CS101 -> CS102 -> CS201.
func testCatalog() []models.CourseDoc {
	return []models.CourseDoc{
		{
			CourseID:    "CS101",
			CourseName:  "Intro to Programming",
			Description: "cs programming fundamentals variables loops",
			Tags:        []string{"cs", "programming"},
			Difficulty:  1,
			Type:        "major",
		},
		{
			CourseID:      "CS102",
			CourseName:    "Data Structures",
			Description:   "cs data structures lists trees stacks",
			Tags:          []string{"cs", "data"},
			Difficulty:    3,
			Type:          "major",
			Prerequisites: []string{"CS101"},
		},
		{
			CourseID:      "CS201",
			CourseName:    "Algorithms",
			Description:   "cs algorithms complexity graphs sorting",
			Tags:          []string{"cs", "algorithms"},
			Difficulty:    4,
			Type:          "major",
			Prerequisites: []string{"CS102"},
		},
	}
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(testCatalog(), 500)
}

func courseIDs(items []models.RecommendationItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.CourseID
	}
	return ids
}

// Escenario A: sin historial, interesado en "cs", sin permitir cursos
// futuros: solo CS101 es elegible (CS102 y CS201 tienen prereqs pendientes).
func TestRecommendGatesUnmetPrerequisites(t *testing.T) {
	e := newTestEngine(t)

	items, err := e.Recommend(Request{
		InterestTags: []string{"cs"},
		TopK:         5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if got := courseIDs(items); !reflect.DeepEqual(got, []string{"CS101"}) {
		t.Fatalf("expected exactly [CS101], got %v", got)
	}
	if len(items[0].MissingPrereqs) != 0 {
		t.Errorf("CS101 has no prerequisites, got missing=%v", items[0].MissingPrereqs)
	}
}

// Escenario B: CS101 completado y cursos futuros permitidos: CS101 queda
// excluido y CS102/CS201 aparecen con sus missing_prereqs correctos.
func TestRecommendAllowFutureCoursesReportsMissingPrereqs(t *testing.T) {
	e := newTestEngine(t)

	items, err := e.Recommend(Request{
		CompletedCourses:   []string{"CS101"},
		AllowFutureCourses: true,
		TopK:               5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	missing := map[string][]string{}
	for _, it := range items {
		if it.CourseID == "CS101" {
			t.Fatalf("completed course CS101 must never be recommended")
		}
		missing[it.CourseID] = it.MissingPrereqs
	}

	if got, ok := missing["CS102"]; !ok || len(got) != 0 {
		t.Errorf("CS102: want empty missing_prereqs, got %v (present=%v)", got, ok)
	}
	if got, ok := missing["CS201"]; !ok || !reflect.DeepEqual(got, []string{"CS102"}) {
		t.Errorf("CS201: want missing_prereqs [CS102], got %v (present=%v)", got, ok)
	}
}

// Escenario C: sin historial ni intereses no hay señal para el perfil.
func TestRecommendNoSignalFails(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Recommend(Request{TopK: 5})
	if !errors.Is(err, ErrNoProfileSignal) {
		t.Fatalf("expected ErrNoProfileSignal, got %v", err)
	}
}

// Escenario D: completed_courses con un id que no existe en el catálogo.
func TestRecommendUnknownCompletedCourse(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Recommend(Request{
		CompletedCourses: []string{"CS101", "UNKNOWN999"},
		TopK:             5,
	})

	var uerr *UnknownCoursesError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnknownCoursesError, got %v", err)
	}
	if !reflect.DeepEqual(uerr.CourseIDs, []string{"UNKNOWN999"}) {
		t.Errorf("expected offending ids [UNKNOWN999], got %v", uerr.CourseIDs)
	}
}

// Escenario E: preferir "hard" sube el ranking relativo de los cursos con
// dificultad >= 4 frente a la misma corrida sin preferencia.
func TestPreferredDifficultyShiftsRanking(t *testing.T) {
	// Los nombres tokenizan igual (el numeral romano de una letra se
	// descarta), así que el texto de ambos cursos es idéntico y el único
	// desempate posible es la preferencia de dificultad.
	catalog := []models.CourseDoc{
		{CourseID: "ML101", CourseName: "Machine Learning I", Description: "machine learning", Difficulty: 1},
		{CourseID: "ML501", CourseName: "Machine Learning V", Description: "machine learning", Difficulty: 5},
	}
	e := NewEngine(catalog, 500)

	base, err := e.Recommend(Request{InterestTags: []string{"machine", "learning"}, TopK: 5})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// mismo texto, sin preferencia: empate, orden de catálogo (estable)
	if got := courseIDs(base); !reflect.DeepEqual(got, []string{"ML101", "ML501"}) {
		t.Fatalf("baseline order: got %v", got)
	}

	hard, err := e.Recommend(Request{
		InterestTags:        []string{"machine", "learning"},
		PreferredDifficulty: "hard",
		TopK:                5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if got := courseIDs(hard); !reflect.DeepEqual(got, []string{"ML501", "ML101"}) {
		t.Fatalf("preferred=hard should rank ML501 first, got %v", got)
	}
	if !(hard[0].Score > hard[1].Score) {
		t.Errorf("expected strict score gap after weighting, got %v vs %v", hard[0].Score, hard[1].Score)
	}
}

func TestRecommendOrderingAndTopKBound(t *testing.T) {
	e := newTestEngine(t)

	items, err := e.Recommend(Request{
		InterestTags:       []string{"cs", "algorithms"},
		AllowFutureCourses: true,
		TopK:               2,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if len(items) > 2 {
		t.Fatalf("top_k=2 but got %d items", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Score < items[i].Score {
			t.Errorf("items not sorted descending at %d: %v < %v", i, items[i-1].Score, items[i].Score)
		}
	}
}

func TestRecommendTopKZeroYieldsEmpty(t *testing.T) {
	e := newTestEngine(t)

	items, err := e.Recommend(Request{InterestTags: []string{"cs"}, TopK: 0})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("top_k=0 should yield empty result, got %v", courseIDs(items))
	}
}

func TestRecommendDuplicateCompletedIDsAreIdempotent(t *testing.T) {
	e := newTestEngine(t)

	once, err := e.Recommend(Request{
		CompletedCourses:   []string{"CS101"},
		AllowFutureCourses: true,
		TopK:               5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	twice, err := e.Recommend(Request{
		CompletedCourses:   []string{"CS101", "CS101"},
		AllowFutureCourses: true,
		TopK:               5,
	})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("duplicated completed ids changed the result:\n%v\nvs\n%v", once, twice)
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	req := Request{
		CompletedCourses:    []string{"CS101"},
		InterestTags:        []string{"algorithms"},
		PreferredDifficulty: "medium",
		AllowFutureCourses:  true,
		TopK:                5,
	}

	a, err := e.Recommend(req)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	b, err := e.Recommend(req)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("identical requests produced different output")
	}
}

func TestDanglingPrereqsAreToleratedAndReported(t *testing.T) {
	catalog := testCatalog()
	catalog = append(catalog, models.CourseDoc{
		CourseID:      "CS999",
		CourseName:    "Special Topics",
		Description:   "cs research seminar",
		Difficulty:    5,
		Prerequisites: []string{"MA301"}, // no existe en el catálogo
	})
	e := NewEngine(catalog, 500)

	dangling := e.DanglingPrereqs()
	if len(dangling) != 1 || dangling[0].CourseID != "CS999" {
		t.Fatalf("expected one dangling entry for CS999, got %v", dangling)
	}
	if !reflect.DeepEqual(dangling[0].Missing, []string{"MA301"}) {
		t.Errorf("expected missing [MA301], got %v", dangling[0].Missing)
	}

	// el prereq colgante nunca se satisface: el curso solo aparece con
	// allow_future_courses=true, y siempre con MA301 pendiente
	gated, err := e.Recommend(Request{InterestTags: []string{"cs"}, TopK: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	for _, it := range gated {
		if it.CourseID == "CS999" {
			t.Fatalf("CS999 must be gated while MA301 is missing")
		}
	}

	open, err := e.Recommend(Request{InterestTags: []string{"cs"}, AllowFutureCourses: true, TopK: 10})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	found := false
	for _, it := range open {
		if it.CourseID == "CS999" {
			found = true
			if !reflect.DeepEqual(it.MissingPrereqs, []string{"MA301"}) {
				t.Errorf("CS999 missing_prereqs: got %v, want [MA301]", it.MissingPrereqs)
			}
		}
	}
	if !found {
		t.Fatalf("CS999 should appear when future courses are allowed")
	}
}
