package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/jcljr27/course-recommender-backend/internal/config"
	"github.com/jcljr27/course-recommender-backend/internal/db"
	"github.com/jcljr27/course-recommender-backend/internal/models"
	"github.com/jcljr27/course-recommender-backend/internal/repository"
	"github.com/jcljr27/course-recommender-backend/internal/service"
)

// Siembra el catálogo de cursos (y opcionalmente perfiles de alumnos)
// desde JSON planos. Reemplaza las colecciones completas, así que es
// idempotente: se puede correr las veces que haga falta.
//
//	COURSES_PATH=./courses.json STUDENTS_PATH=./students.json go run ./cmd/import
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	courses := loadCourses(cfg.CoursesPath)
	courseRepo := repository.NewCourseRepository()
	if err := courseRepo.ReplaceAll(ctx, courses); err != nil {
		log.Fatalf("[import] no se pudo escribir la colección de cursos: %v", err)
	}
	log.Printf("[import] %d cursos importados desde %s", len(courses), cfg.CoursesPath)

	// Los prerequisitos colgantes no frenan el import: el recomendador
	// los tolera (nunca satisfacibles), pero conviene avisar acá.
	report := service.BuildCatalogQualityReport(courses)
	for _, d := range report.DanglingPrereqs {
		log.Printf("[import] aviso: %s referencia prerequisitos inexistentes %v", d.CourseID, d.Missing)
	}

	// students.json es opcional
	if _, err := os.Stat(cfg.StudentsPath); err == nil {
		students := loadStudents(cfg.StudentsPath)
		studentRepo := repository.NewStudentRepository()
		if err := studentRepo.ReplaceAll(ctx, students); err != nil {
			log.Fatalf("[import] no se pudo escribir la colección de perfiles: %v", err)
		}
		log.Printf("[import] %d perfiles importados desde %s", len(students), cfg.StudentsPath)
	} else {
		log.Printf("[import] %s no existe, se omiten perfiles de alumnos", cfg.StudentsPath)
	}
}

func loadCourses(path string) []models.CourseDoc {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[import] no se pudo leer %s: %v", path, err)
	}

	var courses []models.CourseDoc
	if err := json.Unmarshal(data, &courses); err != nil {
		log.Fatalf("[import] %s no es un JSON de cursos válido: %v", path, err)
	}

	now := time.Now().Format(time.RFC3339)
	seen := make(map[string]bool, len(courses))
	for i := range courses {
		c := &courses[i]
		if c.CourseID == "" || c.CourseName == "" {
			log.Fatalf("[import] curso #%d sin course_id o course_name", i)
		}
		if seen[c.CourseID] {
			log.Fatalf("[import] course_id duplicado: %s", c.CourseID)
		}
		seen[c.CourseID] = true

		if c.Tags == nil {
			c.Tags = []string{}
		}
		if c.Prerequisites == nil {
			c.Prerequisites = []string{}
		}
		if c.CreatedAt == "" {
			c.CreatedAt = now
		}
		c.UpdatedAt = now
	}
	return courses
}

func loadStudents(path string) []models.StudentProfileDoc {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("[import] no se pudo leer %s: %v", path, err)
	}

	var students []models.StudentProfileDoc
	if err := json.Unmarshal(data, &students); err != nil {
		log.Fatalf("[import] %s no es un JSON de perfiles válido: %v", path, err)
	}

	now := time.Now().Format(time.RFC3339)
	for i := range students {
		s := &students[i]
		if s.StudentID == "" {
			log.Fatalf("[import] perfil #%d sin student_id", i)
		}
		if s.CompletedCourses == nil {
			s.CompletedCourses = []string{}
		}
		if s.InterestTags == nil {
			s.InterestTags = []string{}
		}
		if s.CreatedAt == "" {
			s.CreatedAt = now
		}
		s.UpdatedAt = now
	}
	return students
}
