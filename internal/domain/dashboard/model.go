package dashboard

import (
	"fmt"
	"strings"
	"time"

	"medication-management/internal/domain/doses"
)

// ScheduleView es un schedule activo (con medicación y recipient activos) con los
// campos que necesita la proyección ya resueltos.
type ScheduleView struct {
	ScheduleID     string
	MedicationID   string
	MedicationName string
	Dosage         string
	RecipientID    string
	RecipientName  string // "first last"
	Times          []string
	DaysOfWeek     []string
}

// TakenDose es una dosis tomada hoy. ScheduleID/ScheduledTime vacíos = dosis sin etiquetar.
type TakenDose struct {
	MedicationID  string
	ScheduleID    string
	ScheduledTime string
}

func (d TakenDose) tagged() bool {
	return d.ScheduleID != "" && d.ScheduledTime != ""
}

// Occurrence es una toma proyectada para hoy; no se persiste.
type Occurrence struct {
	MedicationID   string   `json:"medicationId"`
	MedicationName string   `json:"medicationName"`
	Dosage         string   `json:"dosage"`
	RecipientID    string   `json:"recipientId"`
	RecipientName  string   `json:"recipientName"`
	ScheduleID     string   `json:"scheduleId"`
	ScheduledTime  string   `json:"scheduledTime"`
	DaysOfWeek     []string `json:"daysOfWeek"`
	TakenToday     bool     `json:"takenToday"`
}

type Stats struct {
	TotalRecipients  int `json:"totalRecipients"`
	TotalMedications int `json:"totalMedications"`
	TotalSchedules   int `json:"totalSchedules"`
	TodayDoses       int `json:"todayDoses"`
	TakenDoses       int `json:"takenDoses"`
	MissedDoses      int `json:"missedDoses"`
	ComplianceRate   int `json:"complianceRate"`
}

// Matching decide cómo se marca takenToday.
type Matching string

const (
	// MatchingPositional (default): solo cuenta dosis por medicación y marca los
	// primeros N horarios de cada schedule.
	MatchingPositional Matching = "positional"
	// MatchingTagged (opt-in): una dosis etiquetada marca exactamente su (schedule, horario);
	// las no etiquetadas completan por posición los horarios libres.
	MatchingTagged Matching = "tagged"
)

func ParseMatching(s string) (Matching, error) {
	switch Matching(strings.ToLower(strings.TrimSpace(s))) {
	case MatchingPositional, "":
		return MatchingPositional, nil
	case MatchingTagged:
		return MatchingTagged, nil
	default:
		return "", fmt.Errorf("invalid taken matching %q (tagged|positional)", s)
	}
}

// CountFilter: campos en cero no filtran. La ventana es [From, To).
type CountFilter struct {
	Status doses.Status
	From   *time.Time
	To     *time.Time
}
