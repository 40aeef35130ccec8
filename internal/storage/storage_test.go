package storage_test

import (
	"testing"

	"github.com/kyuri-go/uri/internal/storage"
)

func TestHeapAllocateDeallocate(t *testing.T) {
	t.Parallel()

	var h storage.Heap
	b, err := h.Allocate(16)
	if err != nil {
		t.Fatalf("Allocate error = %v", err)
	}
	if len(b) != 16 {
		t.Fatalf("Allocate(16) returned len %d", len(b))
	}
	h.Deallocate(b)

	if _, err := h.Allocate(-1); err == nil {
		t.Error("Allocate(-1) succeeded, want error")
	}
}

func TestInlineCapacityAndSingleLiveAllocation(t *testing.T) {
	t.Parallel()

	s := storage.NewInline()
	if s.Capacity() != 256 {
		t.Fatalf("Capacity() = %d, want 256", s.Capacity())
	}

	b, err := s.Allocate(32)
	if err != nil {
		t.Fatalf("Allocate(32) error = %v", err)
	}
	if len(b) != 32 {
		t.Errorf("Allocate(32) returned len %d", len(b))
	}

	if _, err := s.Allocate(8); err == nil {
		t.Error("Allocate while a prior allocation is live succeeded, want error")
	}

	s.Deallocate(b)
	b2, err := s.Allocate(8)
	if err != nil {
		t.Fatalf("Allocate after Deallocate failed: %v", err)
	}
	s.Deallocate(b2)

	if _, err := s.Allocate(1000); err == nil {
		t.Error("Allocate(1000) exceeding capacity succeeded, want error")
	}
}
