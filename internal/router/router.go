package router

import (
	"database/sql"
	"net/http"
	"time"

	_ "medication-management/docs"
	jwtauth "medication-management/internal/adapters/auth/jwt"
	mem "medication-management/internal/adapters/storage/memory"
	pg "medication-management/internal/adapters/storage/postgres"
	"medication-management/internal/domain/dashboard"
	"medication-management/internal/domain/doses"
	"medication-management/internal/domain/medications"
	"medication-management/internal/domain/recipients"
	"medication-management/internal/domain/schedules"
	"medication-management/internal/domain/users"
	"medication-management/internal/middleware"
	"medication-management/internal/platform/logger"
	"medication-management/internal/platform/metrics"
	"medication-management/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// devSecret firma tokens cuando no se inyecta un TokenIssuer (tests y dev).
const devSecret = "dev-secret-change-me"

type Options struct {
	// AuthVerifier nil => modo dev (X-Debug-User-ID).
	AuthVerifier auth.AuthVerifier

	// TokenIssuer para /auth/register y /auth/login. Si es nil se usa un
	// manager JWT con secreto de desarrollo.
	TokenIssuer auth.TokenIssuer

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Clock define "ahora" (y la zona horaria de "hoy"). Nil => time.Now.
	Clock func() time.Time

	// TakenMatching vacío => positional.
	TakenMatching dashboard.Matching
}

type repos struct {
	recipients  recipients.Repository
	medications medications.Repository
	schedules   schedules.Repository
	doses       doses.Repository
	users       users.Repository
	dashboard   dashboard.Repository
}

func newRepos(db *sql.DB) repos {
	if db != nil {
		return repos{
			recipients:  pg.NewRecipientsRepo(db),
			medications: pg.NewMedicationsRepo(db),
			schedules:   pg.NewSchedulesRepo(db),
			doses:       pg.NewDosesRepo(db),
			users:       pg.NewUsersRepo(db),
			dashboard:   pg.NewDashboardRepo(db),
		}
	}
	s := mem.NewStore()
	return repos{
		recipients:  s.Recipients,
		medications: s.Medications,
		schedules:   s.Schedules,
		doses:       s.Doses,
		users:       s.Users,
		dashboard:   s.Dashboard,
	}
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}
	issuer := opts.TokenIssuer
	if issuer == nil {
		mgr, err := jwtauth.NewManager(jwtauth.Config{Secret: devSecret})
		if err != nil {
			return nil, err
		}
		issuer = mgr
	}
	mode := opts.TakenMatching
	if mode == "" {
		mode = dashboard.MatchingPositional
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AuthContext(opts.AuthVerifier))
	r.Use(middleware.RequestLogger(log))
	r.Use(m.Middleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	rp := newRepos(opts.DB)

	// Services por módulo
	recipientsSvc := recipients.NewService(rp.recipients)
	schedulesSvc := schedules.NewService(rp.schedules, rp.medications, rp.recipients)
	medicationsSvc := medications.NewService(rp.medications, rp.recipients, schedulesSvc)
	dosesSvc := doses.NewService(rp.doses, rp.medications, rp.schedules, rp.recipients)
	dosesSvc.SetObserver(m)
	dashboardSvc := dashboard.NewService(rp.dashboard, mode)
	usersSvc := users.NewService(rp.users, issuer)

	if opts.Clock != nil {
		dosesSvc.SetClock(opts.Clock)
		dashboardSvc.SetClock(opts.Clock)
	}

	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireClaims)

		users.RegisterRoutes(r, pr, usersSvc, log)
		recipients.RegisterRoutes(pr, recipientsSvc, medicationsSvc, log)
		medications.RegisterRoutes(pr, medicationsSvc, log)
		schedules.RegisterRoutes(pr, schedulesSvc, log)
		doses.RegisterRoutes(pr, dosesSvc, log)
		dashboard.RegisterRoutes(pr, dashboardSvc, log)
	})

	return r, nil
}
