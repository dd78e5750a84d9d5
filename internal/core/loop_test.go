package core

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoopFrameOrder(t *testing.T) {
	var order []string
	loop := NewLoop(60,
		func(dt float64) { order = append(order, "physics") },
		func() { order = append(order, "render") },
	)
	if !loop.Post(func() { order = append(order, "input") }) {
		t.Fatal("Post rejected on an empty queue")
	}
	loop.Frame(1.0 / 60)

	want := []string{"input", "physics", "render"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
	if loop.Frames() != 1 {
		t.Fatalf("Frames() = %d, want 1", loop.Frames())
	}
}

func TestLoopRunFramesFixedDT(t *testing.T) {
	var total float64
	renders := 0
	loop := NewLoop(30, func(dt float64) { total += dt }, func() { renders++ })
	loop.RunFrames(10, 0.05)
	if renders != 10 {
		t.Fatalf("renders = %d, want 10", renders)
	}
	if total < 0.4999 || total > 0.5001 {
		t.Fatalf("integrated dt = %f, want 0.5", total)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	loop := NewLoop(1000, func(float64) {}, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := loop.Run(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Run returned %v, want deadline exceeded", err)
	}
}

func TestLoopPostRejectsNil(t *testing.T) {
	loop := NewLoop(60, nil, nil)
	if loop.Post(nil) {
		t.Fatal("Post(nil) accepted")
	}
}

func TestFrameClockFirstTickIsZero(t *testing.T) {
	base := time.Unix(100, 0)
	now := base
	clock := &FrameClock{now: func() time.Time { return now }}
	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("first Tick = %f, want 0", dt)
	}
	now = base.Add(250 * time.Millisecond)
	if dt := clock.Tick(); dt < 0.2499 || dt > 0.2501 {
		t.Fatalf("second Tick = %f, want 0.25", dt)
	}
	clock.Reset()
	if dt := clock.Tick(); dt != 0 {
		t.Fatalf("Tick after Reset = %f, want 0", dt)
	}
}

func TestGridClampAndPingPong(t *testing.T) {
	g := NewGrid[float64](4, 3)
	if x, y := g.Clamp(-2, 7); x != 0 || y != 2 {
		t.Fatalf("Clamp(-2,7) = (%d,%d), want (0,2)", x, y)
	}
	if g.InBounds(4, 0) || !g.InBounds(3, 2) {
		t.Fatal("InBounds disagrees with dimensions")
	}

	pp := NewPingPong[int](2, 2)
	pp.Next.Set(1, 1, 9)
	pp.Swap()
	if pp.Cur.At(1, 1) != 9 {
		t.Fatal("Swap did not expose the written buffer")
	}
	if pp.Next.At(1, 1) != 0 {
		t.Fatal("Swap left the old buffer in Next dirty")
	}
}
