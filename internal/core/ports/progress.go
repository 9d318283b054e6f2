package ports

// ProgressSink receives human readable stage labels while a workflow runs.
// It is a side channel, not part of the workflow's correctness.
type ProgressSink interface {
	Stage(label string)
}

// StageFunc adapts a plain function to the ProgressSink interface.
type StageFunc func(label string)

// Stage implements the ProgressSink interface.
func (f StageFunc) Stage(label string) { f(label) }
