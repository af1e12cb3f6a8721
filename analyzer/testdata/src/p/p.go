package p

// Work around module issues. The analyzer only matches the `Record` method
// name, so a local stand-in for the real Recorder is enough.

import "context"

type Recorder struct{}

func (r *Recorder) Record(ctx context.Context) (context.Context, func()) {
	return ctx, func() {}
}

func closedScope(ctx context.Context, r *Recorder) {
	ctx, finish := r.Record(ctx)
	defer finish()

	_ = ctx
}

func finishCalledLater(ctx context.Context, r *Recorder) {
	ctx, finish := r.Record(ctx)
	_ = ctx
	finish()
}

func discardedResult(ctx context.Context, r *Recorder) {
	r.Record(ctx) // want "result of Record is discarded. the scope stays open, defer the returned finish function"
}

func discardedFinish(ctx context.Context, r *Recorder) {
	ctx, _ = r.Record(ctx) // want "finish function returned by Record is discarded. the scope stays open, defer it instead"
	_ = ctx
}
