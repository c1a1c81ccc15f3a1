package pipeline

import "time"

type TableReport struct {
	Step    string `json:"step"`
	Table   string `json:"table"`
	Rows    int    `json:"rows"`
	Loaded  bool   `json:"loaded"`
	Skipped bool   `json:"skipped"`
}

// RunReport resume uma execução do pipeline. Tables só contém as etapas alcançadas.
type RunReport struct {
	RunID       string        `json:"run_id"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	ExtractedAt time.Time     `json:"extracted_at"`
	Tables      []TableReport `json:"tables"`
	Error       string        `json:"error,omitempty"`
}

func (r *RunReport) TotalRows() int {
	total := 0
	for _, t := range r.Tables {
		if t.Loaded {
			total += t.Rows
		}
	}
	return total
}

func (r *RunReport) Succeeded() bool {
	return r.Error == ""
}

func (r *RunReport) finish(now time.Time, err error) (*RunReport, error) {
	r.FinishedAt = now.UTC()
	if err != nil {
		r.Error = err.Error()
	}
	return r, err
}
