package dashboard

import (
	"math"
	"sort"
	"time"

	"medication-management/internal/domain/schedules"
)

type slot struct {
	scheduleID string
	time       string
}

// Project calcula las tomas de hoy a partir de los schedules activos y las dosis
// tomadas hoy. Es una función pura: no filtra por activo (eso lo hace el repo).
//
// El orden final es por scheduledTime como string ("08:00" < "20:00"); el sort es
// estable, así que a igual horario se respeta el orden de schedules y de times.
func Project(now time.Time, views []ScheduleView, taken []TakenDose, limit int, mode Matching) []Occurrence {
	out := make([]Occurrence, 0)
	if limit <= 0 {
		return out
	}

	today := schedules.WeekdayName(now)
	claimed, untagged := tally(taken, mode)

	for _, v := range views {
		if !contains(v.DaysOfWeek, today) {
			continue
		}

		// Cada schedule arranca con el conteo completo de la medicación.
		remaining := untagged[v.MedicationID]
		for _, t := range v.Times {
			takenToday := false
			if claimed[slot{scheduleID: v.ScheduleID, time: t}] {
				takenToday = true
			} else if remaining > 0 {
				takenToday = true
				remaining--
			}

			out = append(out, Occurrence{
				MedicationID:   v.MedicationID,
				MedicationName: v.MedicationName,
				Dosage:         v.Dosage,
				RecipientID:    v.RecipientID,
				RecipientName:  v.RecipientName,
				ScheduleID:     v.ScheduleID,
				ScheduledTime:  t,
				DaysOfWeek:     v.DaysOfWeek,
				TakenToday:     takenToday,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ScheduledTime < out[j].ScheduledTime
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// tally separa las dosis en slots reclamados (etiquetadas) y conteo por medicación
// (sin etiquetar). En modo posicional todas cuentan por medicación.
// Una dosis etiquetada cuyo slot ya no existe no marca ningún otro horario.
func tally(taken []TakenDose, mode Matching) (map[slot]bool, map[string]int) {
	claimed := map[slot]bool{}
	untagged := map[string]int{}
	for _, d := range taken {
		if mode != MatchingPositional && d.tagged() {
			claimed[slot{scheduleID: d.ScheduleID, time: d.ScheduledTime}] = true
			continue
		}
		untagged[d.MedicationID]++
	}
	return claimed, untagged
}

// ComplianceRate redondea al entero más cercano; 0 si no hay dosis.
func ComplianceRate(taken, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(taken) / float64(total) * 100))
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
