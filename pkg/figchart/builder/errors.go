package builder

import (
	"fmt"

	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// ColumnNotFoundError reports a column reference that matches no column.
type ColumnNotFoundError struct {
	Ref models.ColumnRef
}

func (e *ColumnNotFoundError) Error() string {
	if name, ok := e.Ref.Name(); ok {
		return fmt.Sprintf("column not found: no header named %q", name)
	}
	return fmt.Sprintf("column not found: %s", e.Ref)
}

// SpecBuildError reports a failure while assembling a chart specification.
type SpecBuildError struct {
	ChartType models.ChartType
	Reason    string
	Err       error
}

func (e *SpecBuildError) Error() string {
	msg := fmt.Sprintf("cannot build %s chart: %s", e.ChartType, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *SpecBuildError) Unwrap() error {
	return e.Err
}

func newSpecBuildError(chartType models.ChartType, reason string, err error) *SpecBuildError {
	return &SpecBuildError{ChartType: chartType, Reason: reason, Err: err}
}
