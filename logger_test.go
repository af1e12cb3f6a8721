package scopedstats

import (
	"bytes"
	"context"
	stdlog "log"
	"os"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/cschleiden/go-scopedstats/log"
)

func Test_DefaultLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)
	defer stdlog.SetOutput(os.Stderr)

	l := NewDefaultLogger().With("component", "recorder")
	l.Debug("hello", log.ScopeIDKey, "scope-1")

	out := buf.String()
	require.Contains(t, out, "DEBUG")
	require.Contains(t, out, "hello")
	require.Contains(t, out, "component")
	require.Contains(t, out, "scope-1")
}

func Test_Recorder_LogsScopeLifecycle(t *testing.T) {
	var buf bytes.Buffer
	stdlog.SetOutput(&buf)
	defer stdlog.SetOutput(os.Stderr)

	r := NewRecorder(&RecorderOptions{
		Logger: NewDefaultLogger(),
		Clock:  clock.NewMock(),
	})

	_, finish := r.Record(context.Background())
	finish()
	finish()

	out := buf.String()
	require.Contains(t, out, "opened recording scope")
	require.Contains(t, out, "finished recording scope")
	require.Contains(t, out, "already finished")
	require.Contains(t, out, log.ScopeIDKey)
}
