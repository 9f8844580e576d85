package memory

import (
	"context"
	"sync"
	"testing"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()

	t.Run("unknown group returns zero value", func(t *testing.T) {
		got, err := reg.FindClassID(ctx, "120363000000000000@g.us")
		if err != nil {
			t.Fatalf("FindClassID: %v", err)
		}
		if got != "" {
			t.Errorf("classID = %q, want empty", got)
		}
	})

	t.Run("upsert then find", func(t *testing.T) {
		if err := reg.UpsertClassID(ctx, "g1@g.us", "class-1"); err != nil {
			t.Fatalf("UpsertClassID: %v", err)
		}
		if err := reg.UpsertClassID(ctx, "g1@g.us", "class-2"); err != nil {
			t.Fatalf("UpsertClassID: %v", err)
		}

		got, err := reg.FindClassID(ctx, "g1@g.us")
		if err != nil {
			t.Fatalf("FindClassID: %v", err)
		}
		if got != "class-2" {
			t.Errorf("classID = %q, want class-2", got)
		}
	})

	t.Run("concurrent access", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = reg.UpsertClassID(ctx, "g2@g.us", "class-3")
				_, _ = reg.FindClassID(ctx, "g2@g.us")
			}()
		}
		wg.Wait()

		got, _ := reg.FindClassID(ctx, "g2@g.us")
		if got != "class-3" {
			t.Errorf("classID = %q, want class-3", got)
		}
	})
}
