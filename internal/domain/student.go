package domain

// StudentRecord is a single grade-book entry.
type StudentRecord struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Average float64 `yaml:"average"`
	Letter  string  `yaml:"letter"`
}

// ReportRow is one line of the summary report. Index starts at 1.
type ReportRow struct {
	Index   int     `yaml:"index"`
	Name    string  `yaml:"name"`
	Average float64 `yaml:"average"`
	Letter  string  `yaml:"letter"`
}

// Report is the summary over all records in insertion order.
type Report struct {
	Rows         []ReportRow `yaml:"students"`
	ClassAverage float64     `yaml:"class_average"`
	Total        int         `yaml:"total"`
}
