package statistics

// Totals holds the headline entity counts for the dashboard.
type Totals struct {
	Terapis         int64 `json:"terapis"`
	Requirements    int64 `json:"requirements"`
	TNA             int64 `json:"tna"`
	Evaluasi        int64 `json:"evaluasi"`
	TrainingModules int64 `json:"trainingModules"`
	Users           int64 `json:"users"`
}

// CabangCount is the number of therapists assigned to one branch.
type CabangCount struct {
	Cabang string `json:"cabang"`
	Count  int64  `json:"count"`
}

// MonthCount is the number of therapists hired in one calendar month,
// keyed "YYYY-MM".
type MonthCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// Coverage reports how many therapists have a given document type.
type Coverage struct {
	With    int64 `json:"with" gorm:"column:with_docs"`
	Without int64 `json:"without" gorm:"column:without_docs"`
}

// Dashboard is the full statistics payload.
type Dashboard struct {
	Totals            Totals        `json:"totals"`
	TerapisPerCabang  []CabangCount `json:"terapisPerCabang"`
	NewTerapisByMonth []MonthCount  `json:"newTerapisByMonth"`
	TNACoverage       Coverage      `json:"tnaCoverage"`
	EvaluasiCoverage  Coverage      `json:"evaluasiCoverage"`
}
