package ecs

import (
	"testing"

	"pacman/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return false for dead entity")
				}
			}
		})
	}
}

func TestStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if !DestroyEntity(w, old) {
		t.Fatal("destroy failed")
	}
	reused := CreateEntity(w)
	if IsAlive(w, old) {
		t.Fatal("stale handle should be dead after id reuse")
	}
	if !IsAlive(w, reused) {
		t.Fatal("reused handle should be alive")
	}
	if old == reused {
		t.Fatal("reused handle must carry a new generation")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestComponentsAndQueries(t *testing.T) {
	h1 := component.NewComponent[int]()
	h2 := component.NewComponent[string]()

	t.Run("add_get_remove", func(t *testing.T) {
		w := NewWorld()
		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		if err := Add(w, e1, h1.Kind(), intPtr(10)); err != nil {
			t.Fatalf("Add: %v", err)
		}
		v, ok := Get(w, e1, h1.Kind())
		if !ok || *v != 10 {
			t.Fatalf("expected 10, got %v ok=%v", v, ok)
		}

		// Components are shared by pointer.
		*v = 11
		v2, _ := Get(w, e1, h1.Kind())
		if *v2 != 11 {
			t.Fatalf("expected mutation to be visible, got %d", *v2)
		}

		if Has(w, e2, h1.Kind()) {
			t.Fatal("e2 should not have the component")
		}
		if !Remove(w, e1, h1.Kind()) {
			t.Fatal("Remove should report true")
		}
		if Has(w, e1, h1.Kind()) {
			t.Fatal("component should be gone")
		}
	})

	t.Run("add_errors", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		DestroyEntity(w, e)

		if err := Add(w, e, h1.Kind(), intPtr(1)); err != component.ErrEntityNotAlive {
			t.Fatalf("expected ErrEntityNotAlive, got %v", err)
		}
		e2 := CreateEntity(w)
		if err := Add[int](w, e2, h1.Kind(), nil); err != component.ErrNilComponent {
			t.Fatalf("expected ErrNilComponent, got %v", err)
		}
		var zero component.ComponentKind[int]
		if err := Add(w, e2, zero, intPtr(1)); err != component.ErrInvalidComponentKind {
			t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
		}
	})

	t.Run("query_intersection", func(t *testing.T) {
		w := NewWorld()
		both := CreateEntity(w)
		onlyInt := CreateEntity(w)

		_ = Add(w, both, h1.Kind(), intPtr(1))
		_ = Add(w, both, h2.Kind(), stringPtr("a"))
		_ = Add(w, onlyInt, h1.Kind(), intPtr(2))

		got := Query(w, h1.ID(), h2.ID())
		if len(got) != 1 || got[0] != both {
			t.Fatalf("Query = %v, want [%v]", got, both)
		}
	})

	t.Run("first_and_foreach", func(t *testing.T) {
		w := NewWorld()
		if _, ok := First(w, h1.Kind()); ok {
			t.Fatal("First on empty store should report false")
		}
		e := CreateEntity(w)
		_ = Add(w, e, h1.Kind(), intPtr(7))

		got, ok := First(w, h1.Kind())
		if !ok || got != e {
			t.Fatalf("First = %v ok=%v, want %v", got, ok, e)
		}

		sum := 0
		ForEach(w, h1.Kind(), func(_ Entity, v *int) {
			sum += *v
		})
		if sum != 7 {
			t.Fatalf("ForEach sum = %d, want 7", sum)
		}
	})

	t.Run("foreach_may_destroy", func(t *testing.T) {
		w := NewWorld()
		for i := 0; i < 4; i++ {
			e := CreateEntity(w)
			_ = Add(w, e, h1.Kind(), intPtr(i))
		}
		visited := 0
		ForEach(w, h1.Kind(), func(e Entity, _ *int) {
			visited++
			DestroyEntity(w, e)
		})
		if visited != 4 {
			t.Fatalf("visited %d entities, want 4", visited)
		}
		if got := Query(w, h1.ID()); len(got) != 0 {
			t.Fatalf("store should be empty, got %v", got)
		}
	})

	t.Run("destroy_drops_components", func(t *testing.T) {
		w := NewWorld()
		e := CreateEntity(w)
		_ = Add(w, e, h1.Kind(), intPtr(1))
		_ = Add(w, e, h2.Kind(), stringPtr("x"))
		DestroyEntity(w, e)

		if len(Query(w, h1.ID())) != 0 || len(Query(w, h2.ID())) != 0 {
			t.Fatal("destroyed entity left components behind")
		}
	})
}

func TestEventQueue(t *testing.T) {
	w := NewWorld()
	w.Events().Push(Event{Type: "a"})
	w.Events().Push(Event{Type: "b", Data: 3})

	events := w.Events().Drain()
	if len(events) != 2 || events[0].Type != "a" || events[1].Type != "b" {
		t.Fatalf("Drain = %v", events)
	}
	if got := w.Events().Drain(); got != nil {
		t.Fatalf("second Drain should be empty, got %v", got)
	}
}
