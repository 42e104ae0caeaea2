package models

// College is a static reference record. The numeric-looking fields stay
// strings on the wire: AdmitRate is display-only, GPAAvg is a numeric
// string, and SATRange is a "min - max" string (the legacy field name on
// the wire is "combined").
type College struct {
	Name      string `db:"name" json:"name"`
	AdmitRate string `db:"admit_rate" json:"admitRate"`
	GPAAvg    string `db:"gpa_avg" json:"gpaAvg"`
	SATRange  string `db:"sat_range" json:"combined"`
}
