package service

import (
	"reflect"
	"testing"

	"github.com/jcljr27/course-recommender-backend/internal/models"
)

func TestBuildCatalogQualityReport(t *testing.T) {
	courses := []models.CourseDoc{
		{CourseID: "CS101", CourseName: "Intro", Description: "programming", Tags: []string{"cs"}},
		{CourseID: "CS102", CourseName: "Data Structures", Description: "trees", Prerequisites: []string{"CS101"}},
		{CourseID: "CS999", CourseName: "Seminar", Description: "research", Prerequisites: []string{"MA301", "CS101"}},
		{CourseID: "XX001", CourseName: "Empty"},
	}

	report := BuildCatalogQualityReport(courses)

	if report.TotalCourses != 4 {
		t.Errorf("TotalCourses = %d, want 4", report.TotalCourses)
	}
	if report.CoursesWithPrereqs != 2 {
		t.Errorf("CoursesWithPrereqs = %d, want 2", report.CoursesWithPrereqs)
	}

	wantDangling := []models.DanglingPrereq{
		{CourseID: "CS999", Missing: []string{"MA301"}},
	}
	if !reflect.DeepEqual(report.DanglingPrereqs, wantDangling) {
		t.Errorf("DanglingPrereqs = %v, want %v", report.DanglingPrereqs, wantDangling)
	}

	if len(report.CoursesWithoutText) != 1 || report.CoursesWithoutText[0].CourseID != "XX001" {
		t.Errorf("CoursesWithoutText = %v, want only XX001", report.CoursesWithoutText)
	}
}

func TestBuildCatalogQualityReportEmptyCatalog(t *testing.T) {
	report := BuildCatalogQualityReport(nil)
	if report.TotalCourses != 0 || len(report.DanglingPrereqs) != 0 || len(report.CoursesWithoutText) != 0 {
		t.Fatalf("empty catalog should produce an empty report, got %+v", report)
	}
}
