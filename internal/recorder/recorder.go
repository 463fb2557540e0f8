package recorder

import "github.com/phinics77/back-tracking/internal/model"

// Recorder persists evaluation reports for later analysis.
type Recorder interface {
	RecordRun(rep *model.Report) error
	Close() error
}
