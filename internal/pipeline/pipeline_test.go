package pipeline

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/migtrends/internal/config"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, d *Dashboard) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, d *Dashboard) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, d)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()
		if p == nil {
			t.Fatal("expected non-nil pipeline")
		}
		if p.StepCount() != 0 {
			t.Errorf("expected 0 steps, got %d", p.StepCount())
		}
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})
}

func TestPipelineAddStep(t *testing.T) {
	t.Parallel()

	t.Run("adds single step", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddStep(&mockStep{name: "one"})
		if p.StepCount() != 1 {
			t.Errorf("expected 1 step, got %d", p.StepCount())
		}
	})

	t.Run("keeps insertion order", func(t *testing.T) {
		t.Parallel()

		p := New()
		p.AddSteps(&mockStep{name: "a"}, &mockStep{name: "b"})
		p.AddStep(&mockStep{name: "c"})

		names := p.StepNames()
		want := []string{"a", "b", "c"}
		if len(names) != len(want) {
			t.Fatalf("expected %v, got %v", want, names)
		}
		for i := range want {
			if names[i] != want[i] {
				t.Errorf("step %d: expected %q, got %q", i, want[i], names[i])
			}
		}
	})
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("logs the step names before running", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		p := New(WithLogger(logger))
		p.AddSteps(&mockStep{name: "load"}, &mockStep{name: "aggregate"})

		if err := p.Execute(context.Background(), NewDashboard(config.NewConfig())); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "msg=\"starting pipeline\" count=2 steps=\"[load aggregate]\"") {
			t.Errorf("unexpected log output:\n%s", buf.String())
		}
	})

	t.Run("runs every step in order and records completion", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{name: name, doFunc: func(context.Context, *Dashboard) error {
				order = append(order, name)
				return nil
			}}
		}

		p := New()
		p.AddSteps(record("first"), record("second"))

		d := NewDashboard(config.NewConfig())
		if err := p.Execute(context.Background(), d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(order) != 2 || order[0] != "first" || order[1] != "second" {
			t.Errorf("unexpected order %v", order)
		}
		if len(d.Completed) != 2 {
			t.Errorf("expected 2 completed steps, got %v", d.Completed)
		}
	})

	t.Run("stops at the first failing step", func(t *testing.T) {
		t.Parallel()

		errBoom := errors.New("boom")
		failing := &mockStep{name: "failing", doFunc: func(context.Context, *Dashboard) error {
			return errBoom
		}}
		after := &mockStep{name: "after"}

		p := New()
		p.AddSteps(failing, after)

		d := NewDashboard(config.NewConfig())
		err := p.Execute(context.Background(), d)
		if !errors.Is(err, errBoom) {
			t.Errorf("expected errBoom, got %v", err)
		}
		if after.callCount != 0 {
			t.Error("expected the following step not to run")
		}
		if len(d.Completed) != 0 {
			t.Errorf("expected no completed steps, got %v", d.Completed)
		}
	})

	t.Run("cancelled context stops before the next step", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		first := &mockStep{name: "first", doFunc: func(context.Context, *Dashboard) error {
			cancel()
			return nil
		}}
		second := &mockStep{name: "second"}

		p := New()
		p.AddSteps(first, second)

		err := p.Execute(ctx, NewDashboard(config.NewConfig()))
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if second.callCount != 0 {
			t.Error("expected second step not to run")
		}
	})
}
