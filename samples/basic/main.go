package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	scopedstats "github.com/cschleiden/go-scopedstats"
)

var lookupUser = scopedstats.Timer(func(ctx context.Context) (string, error) {
	time.Sleep(time.Duration(rand.Intn(20)) * time.Millisecond)
	return "user-1", nil
}, &scopedstats.TimerOptions{Key: "db.lookup", Tags: scopedstats.Tags{"table": "users"}})

func handleRequest(ctx context.Context) error {
	scopedstats.Count(ctx, "requests")

	if _, err := lookupUser(ctx); err != nil {
		return err
	}

	if rand.Intn(2) == 0 {
		_ = scopedstats.Incr(ctx, "cache.hits", scopedstats.Tags{"type": "redis"}, 1)
	}

	return nil
}

func main() {
	recorder := scopedstats.NewRecorder(&scopedstats.RecorderOptions{
		Logger: scopedstats.NewDefaultLogger(),
	})

	// Outside a recording scope instrumented code runs without any
	// bookkeeping.
	if err := handleRequest(context.Background()); err != nil {
		panic(err)
	}

	ctx, finish := recorder.Record(context.Background())
	for i := 0; i < 10; i++ {
		if err := handleRequest(ctx); err != nil {
			panic(err)
		}
	}
	finish()

	result, err := recorder.GetResult(nil, scopedstats.RequireRecording())
	if err != nil {
		panic(err)
	}

	for name, value := range result {
		fmt.Printf("%s = %v\n", name, value)
	}

	// Narrow down to the redis entries
	redisOnly, err := recorder.GetResult(scopedstats.Tags{"type": "redis"})
	if err != nil {
		panic(err)
	}

	fmt.Printf("redis entries: %v\n", redisOnly)
}
