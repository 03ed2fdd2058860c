package figchart

import (
	"github.com/ukaji3/figchart-go/pkg/figchart/builder"
	"github.com/ukaji3/figchart-go/pkg/figchart/models"
)

// AppState is everything a chart is rebuilt from. It is a value: the With
// methods return a modified copy and never touch the receiver.
type AppState struct {
	Dataset   *models.Dataset
	Settings  models.Settings
	ChartType models.ChartType
}

// NewAppState returns a state with default settings and a line chart.
func NewAppState(ds *models.Dataset) AppState {
	return AppState{
		Dataset:   ds,
		Settings:  models.DefaultSettings(),
		ChartType: models.ChartLine,
	}
}

// WithDataset returns s showing ds.
func (s AppState) WithDataset(ds *models.Dataset) AppState {
	s.Dataset = ds
	return s
}

// WithSettings returns s with the given settings.
func (s AppState) WithSettings(settings models.Settings) AppState {
	s.Settings = settings.Clone()
	return s
}

// WithChartType returns s drawing the given chart kind.
func (s AppState) WithChartType(t models.ChartType) AppState {
	s.ChartType = t
	return s
}

// Transposed returns s with the dataset's rows and columns swapped.
func (s AppState) Transposed() AppState {
	if s.Dataset != nil {
		s.Dataset = s.Dataset.Transpose()
	}
	return s
}

// Rebuild computes the chart specification for s from scratch.
func Rebuild(s AppState) (*models.ChartSpec, error) {
	return builder.Build(s.Dataset, s.Settings, s.ChartType)
}
