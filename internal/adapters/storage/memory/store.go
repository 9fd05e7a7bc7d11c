package memory

// Store agrupa los repos en memoria. El dashboard lee los mapas de los demás,
// por eso comparten un mismo Store.
type Store struct {
	Recipients  *RecipientRepo
	Medications *MedicationRepo
	Schedules   *ScheduleRepo
	Doses       *DoseRepo
	Users       *UserRepo
	Dashboard   *DashboardRepo
}

func NewStore() *Store {
	s := &Store{
		Recipients:  NewRecipientRepo(),
		Medications: NewMedicationRepo(),
		Schedules:   NewScheduleRepo(),
		Doses:       NewDoseRepo(),
		Users:       NewUserRepo(),
	}
	s.Dashboard = &DashboardRepo{store: s}
	return s
}
