package dashboard

import (
	"context"
	"time"

	"medication-management/internal/domain/doses"
	"medication-management/internal/domain/schedules"
	"medication-management/internal/platform/apperr"

	"golang.org/x/sync/errgroup"
)

const DefaultUpcomingLimit = 5

type Service struct {
	repo Repository
	mode Matching
	now  func() time.Time
}

func NewService(repo Repository, mode Matching) *Service {
	if mode == "" {
		mode = MatchingPositional
	}
	return &Service{
		repo: repo,
		mode: mode,
		now:  time.Now,
	}
}

// SetClock fija el reloj; "hoy" se calcula en la zona del time.Time que devuelve.
func (s *Service) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

// UpcomingDoses proyecta las tomas de hoy. Los errores del store se propagan tal cual.
func (s *Service) UpcomingDoses(ctx context.Context, limit int) ([]Occurrence, error) {
	if limit < 0 {
		return nil, apperr.Validation("limit must be >= 0")
	}

	now := s.now()
	views, err := s.repo.ListActiveSchedules(ctx)
	if err != nil {
		return nil, err
	}

	start, end := schedules.DayWindow(now)
	taken, err := s.repo.ListTakenDoses(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return Project(now, views, taken, limit, s.mode), nil
}

// Stats corre los conteos en paralelo; no hay dependencia entre ellos ni se
// garantiza que vean el mismo snapshot.
// missedDoses no se limita a hoy: es el acumulado histórico.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	start, end := schedules.DayWindow(s.now())

	var st Stats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		st.TotalRecipients, err = s.repo.CountActiveRecipients(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.TotalMedications, err = s.repo.CountActiveMedications(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.TotalSchedules, err = s.repo.CountActiveSchedules(gctx)
		return err
	})
	g.Go(func() (err error) {
		st.TodayDoses, err = s.repo.CountDoses(gctx, CountFilter{From: &start, To: &end})
		return err
	})
	g.Go(func() (err error) {
		st.TakenDoses, err = s.repo.CountDoses(gctx, CountFilter{Status: doses.StatusTaken, From: &start, To: &end})
		return err
	})
	g.Go(func() (err error) {
		st.MissedDoses, err = s.repo.CountDoses(gctx, CountFilter{Status: doses.StatusMissed})
		return err
	})

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	st.ComplianceRate = ComplianceRate(st.TakenDoses, st.TodayDoses)
	return st, nil
}
