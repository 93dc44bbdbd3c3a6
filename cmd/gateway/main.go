package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/learnsight/learnsight-engine/internal/api/http"
	"github.com/learnsight/learnsight-engine/internal/assessment"
	auth "github.com/learnsight/learnsight-engine/internal/auth/middleware"
	"github.com/learnsight/learnsight-engine/internal/config"
	"github.com/learnsight/learnsight-engine/internal/db"
	"github.com/learnsight/learnsight-engine/internal/guides"
	"github.com/learnsight/learnsight-engine/internal/profile"
	rbac "github.com/learnsight/learnsight-engine/internal/rbac"
	"github.com/learnsight/learnsight-engine/internal/recompute"
	syncx "github.com/learnsight/learnsight-engine/internal/sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Engine ---
	// Bad weights are an operator error; refuse to start rather than score
	// students against a broken policy.
	calc, err := profile.NewCalculator(cfg.Weights())
	if err != nil {
		log.Fatalf("scoring config: %v", err)
	}

	profileStore := profile.NewSQLStore(dbh)
	assessStore := assessment.NewSQLStore(dbh)
	guideStore := guides.NewSQLStore(dbh)
	events := syncx.NewEventRepo(dbh)

	orch := recompute.New(assessStore, profileStore, calc, cfg.BucketThreshold, events, time.Now)

	// --- Auth (local JWT) ---
	authSvc := auth.NewAuthService(cfg.AuthHMACSecret)

	// Bootstrap admin for fresh installs (hash supplied via env).
	if cfg.AdminPassHash != "" {
		_, err := dbh.ExecContext(ctx,
			`INSERT INTO users (id, username, password_hash, role, created_at) VALUES ($1,$1,$2,'admin',$3) ON CONFLICT (id) DO NOTHING`,
			cfg.AdminUser, cfg.AdminPassHash, time.Now().Unix())
		if err != nil {
			log.Printf("admin bootstrap: %v", err)
		}
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))
	}

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		pr.Use(auth.AttachRoleFromDB(dbh, true))

		// Submission flow: capture, then recompute the profile
		pr.With(rbac.Require("assessment:submit")).
			Post("/assessments/cognitive", api.SubmitCognitiveHandler(assessStore, orch, events))
		pr.With(rbac.Require("assessment:submit")).
			Post("/assessments/academic", api.SubmitAcademicHandler(assessStore, orch, events))

		// Profile reads: students see their own, teachers see all
		pr.With(rbac.RequireAny("profile:view-own", "profile:view-all")).
			Get("/students/{studentID}/profile", api.GetProfileHandler(profileStore))
		pr.With(rbac.RequireAny("profile:view-own", "profile:view-all")).
			Get("/students/{studentID}/radar", api.GetRadarHandler(profileStore))
		pr.With(rbac.RequireAny("profile:view-own", "profile:view-all")).
			Get("/students/{studentID}/attempts", api.ListAttemptsHandler(assessStore))

		// Guides ranked against the student's profile
		pr.With(rbac.Require("guides:view")).
			Get("/students/{studentID}/guides", api.GetGuidesForStudentHandler(guideStore, profileStore))
		pr.With(rbac.Require("guides:manage")).
			Post("/guides", api.PutGuideHandler(guideStore))

		// Teacher analytics
		pr.With(rbac.Require("bucket:view")).
			Get("/buckets/{category}", api.GetBucketMembersHandler(profileStore))
		pr.With(rbac.Require("analytics:view")).
			Get("/analytics/domains", api.GetDomainDistributionHandler(dbh))

		// Users (teacher/admin)
		pr.With(rbac.Require("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
		pr.With(rbac.Require("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(rbac.Require("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := dbh.PingContext(r.Context()); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(200)
	})

	log.Printf("listening on %s (db=%s, threshold=%d)", cfg.HTTPAddr, cfg.DBDriver, cfg.BucketThreshold)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
