package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/jcljr27/course-recommender-backend/docs" // swagger docs

	"github.com/jcljr27/course-recommender-backend/internal/cache"
	"github.com/jcljr27/course-recommender-backend/internal/config"
	"github.com/jcljr27/course-recommender-backend/internal/db"
	"github.com/jcljr27/course-recommender-backend/internal/handler"
	"github.com/jcljr27/course-recommender-backend/internal/recommender"
	"github.com/jcljr27/course-recommender-backend/internal/repository"
	"github.com/jcljr27/course-recommender-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Course Recommender API
// @version 1.0
// @description API de recomendación de cursos (TF-IDF, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	courseRepo := repository.NewCourseRepository()
	studentRepo := repository.NewStudentRepository()
	courseReqRepo := repository.NewCourseRequestRepository()
	recRepo := repository.NewRecommendationRepository()

	// ======================================================
	// Engine de recomendación: se ajusta UNA vez al arranque
	// sobre el catálogo completo y queda inmutable. Cursos
	// nuevos entran al ranking recién en el próximo reinicio.
	// ======================================================
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	courses, err := courseRepo.ListAll(ctx)
	cancel()
	if err != nil {
		log.Fatalf("no se pudo leer el catálogo de cursos: %v", err)
	}
	if len(courses) == 0 {
		log.Println("[api] catálogo vacío: correr cmd/import para sembrar cursos")
	}
	engine := recommender.NewEngine(courses, cfg.TfidfMaxFeatures)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	courseSvc := service.NewCourseService(courseRepo)
	studentSvc := service.NewStudentService(studentRepo)
	courseReqSvc := service.NewCourseRequestService(courseReqRepo, courseRepo, courseSvc)
	recSvc := service.NewRecommendService(engine, studentRepo, recRepo)
	catalogSvc := service.NewCatalogQualityService(courseRepo, engine, cfg.TfidfMaxFeatures)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	courseH := handler.NewCourseHandler(courseSvc)
	studentH := handler.NewStudentHandler(studentSvc)
	courseReqH := handler.NewCourseRequestHandler(courseReqSvc)
	recH := handler.NewRecommendHandler(recSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo de cursos (público)
	r.Get("/courses", courseH.ListCourses)
	r.Get("/courses/search", courseH.Search)
	r.Get("/courses/{course_id}", courseH.GetCourse)

	// Recomendaciones ad-hoc (el cliente manda el estado del alumno)
	r.Post("/recommendations", recH.PostRecommendations)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (alumno autenticado) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/profile", studentH.GetMyProfile)
			r.Put("/profile", studentH.UpdateMyProfile)
			r.Get("/recommendations", recH.GetMyRecommendations)

			// course requests (alumno)
			r.Get("/course-requests", courseReqH.ListMine)
			r.Post("/course-requests", courseReqH.Create)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// usuarios
			r.Get("/users", authH.ListUsers)
			r.Get("/users/{id}", authH.GetUserByID)
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión de cursos
			r.Post("/admin/courses", courseH.CreateCourse)
			r.Put("/admin/courses/{course_id}", courseH.UpdateCourse)

			// perfiles de alumnos
			r.Get("/students", studentH.List)
			r.Post("/students", studentH.Create)
			r.Route("/students/{id}", func(r chi.Router) {
				r.Get("/", studentH.Get)
				r.Put("/", studentH.Update)

				r.Get("/recommendations/history", recH.GetHistory)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// course-requests (ADMIN)
			r.Get("/admin/course-requests", courseReqH.ListAll)
			r.Post("/admin/course-requests/{id}/approve", courseReqH.Approve)
			r.Post("/admin/course-requests/{id}/reject", courseReqH.Reject)

			// calidad del catálogo
			r.Get("/admin/catalog/quality", catalogH.Quality)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
