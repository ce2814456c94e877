package port

import (
	"io"

	"radscan/internal/domain"
)

// ReportWriter renders a match report for human or machine consumption.
type ReportWriter interface {
	Write(w io.Writer, report *domain.MatchReport) error
}
