package domain

import "fmt"

// CompleteLabel replaces the percentage once every file is processed.
const CompleteLabel = "Search Complete!"

// Progress is the (completed, total) pair reported after each file.
type Progress struct {
	Completed int
	Total     int
}

// ProgressFunc receives progress updates. Implementations must tolerate Total == 0.
type ProgressFunc func(Progress)

// Percent returns Completed/Total*100 truncated, or 0 when Total is 0.
func (p Progress) Percent() int {
	if p.Total <= 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// Fraction returns progress in [0, 1], or 0 when Total is 0.
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Completed) / float64(p.Total)
	if f > 1 {
		return 1
	}
	return f
}

// Done reports whether every file of a non-empty folder has been processed.
func (p Progress) Done() bool {
	return p.Total > 0 && p.Completed >= p.Total
}

// Label renders "Progress: N%" or the completion label.
func (p Progress) Label() string {
	if p.Done() {
		return CompleteLabel
	}
	return fmt.Sprintf("Progress: %d%%", p.Percent())
}
