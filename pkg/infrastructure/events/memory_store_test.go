package events

import (
	"testing"
)

func TestInMemoryEventStore_AppendAssignsVersions(t *testing.T) {
	store := NewInMemoryEventStore()

	for i := 0; i < 3; i++ {
		err := store.AppendEvent("run-1", NewEvent(ImportGroupCommittedEvent, "run-1", nil))
		if err != nil {
			t.Fatalf("AppendEvent failed: %v", err)
		}
	}

	stream, err := store.ReadEvents("run-1", 1)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(stream) != 3 {
		t.Fatalf("expected 3 events, got %d", len(stream))
	}

	for i, event := range stream {
		if event.Version() != i+1 {
			t.Errorf("expected version %d, got %d", i+1, event.Version())
		}
	}
}

func TestInMemoryEventStore_ReadFromVersion(t *testing.T) {
	store := NewInMemoryEventStore()

	_ = store.AppendEvent("run-1", NewEvent(ImportRunStartedEvent, "run-1", nil))
	_ = store.AppendEvent("run-1", NewEvent(ImportRunFinishedEvent, "run-1", nil))

	stream, err := store.ReadEvents("run-1", 2)
	if err != nil {
		t.Fatalf("ReadEvents failed: %v", err)
	}
	if len(stream) != 1 {
		t.Fatalf("expected 1 event, got %d", len(stream))
	}
	if stream[0].Type() != ImportRunFinishedEvent {
		t.Errorf("expected finish event, got %s", stream[0].Type())
	}

	if got, _ := store.ReadEvents("run-1", 10); len(got) != 0 {
		t.Errorf("expected empty slice past the end, got %d", len(got))
	}
	if got, _ := store.ReadEvents("missing", 1); len(got) != 0 {
		t.Errorf("expected empty slice for missing stream, got %d", len(got))
	}
}

func TestInMemoryEventStore_ReadAllEvents(t *testing.T) {
	store := NewInMemoryEventStore()

	_ = store.AppendEvent("run-1", NewEvent(ImportRunStartedEvent, "run-1", nil))
	_ = store.AppendEvent("run-2", NewEvent(ImportRunStartedEvent, "run-2", nil))

	all, err := store.ReadAllEvents(0)
	if err != nil {
		t.Fatalf("ReadAllEvents failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events, got %d", len(all))
	}
}
