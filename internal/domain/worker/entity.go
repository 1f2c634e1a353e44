package worker

import "time"

// Worker is a paid consultant on staff. Payroll entries, pay rates and
// paycheck stubs all reference workers by ID.
type Worker struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
