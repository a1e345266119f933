package harness

// TestLogger receives the per-row lifecycle events of a run.
type TestLogger interface {
	TestStarted(id TestID)
	TestFinished(id TestID, output TestOutput)
	TestError(id TestID, err error)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)              {}
func (n nullTestLogger) TestFinished(TestID, TestOutput) {}
func (n nullTestLogger) TestError(TestID, error)         {}
