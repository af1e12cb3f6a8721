package scopedstats

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func Test_Recorder_SharedAcrossGoroutines(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _ := newTestRecorder()

	const workers = 8
	const perWorker = 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			// Each goroutine opens its own scope on the shared recorder
			ctx, finish := r.Record(context.Background())
			defer finish()

			for j := 0; j < perWorker; j++ {
				_ = Incr(ctx, "work.items", nil, 1)
			}
		}()
	}
	wg.Wait()

	result, err := r.GetResult(nil)
	require.NoError(t, err)
	require.Equal(t, float64(workers*perWorker), result["work.items"])
}

func Test_Recorder_GoroutinesDoNotObserveOtherScopes(t *testing.T) {
	defer goleak.VerifyNone(t)

	r, _ := newTestRecorder()

	_, finish := r.Record(context.Background())
	defer finish()

	done := make(chan struct{})
	go func() {
		defer close(done)

		// This goroutine never received the recording context, its
		// writes must not land anywhere.
		_ = Incr(context.Background(), "isolated", nil, 1)
	}()
	<-done

	result, err := r.GetResult(nil)
	require.NoError(t, err)
	require.NotContains(t, result, "isolated")
}
