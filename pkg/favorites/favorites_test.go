package favorites_test

import (
	"errors"
	"reflect"
	"testing"

	"todostate/pkg/favorites"
	"todostate/pkg/storage"
	"todostate/pkg/storage/memkv"
)

func TestLoadMissingEntry(t *testing.T) {
	s := favorites.New(memkv.New())
	s.Load(7)

	if got := s.IDs(); len(got) != 0 {
		t.Errorf("expected empty set, got %v", got)
	}
}

func TestToggleAddsAndPersists(t *testing.T) {
	kv := memkv.New()
	s := favorites.New(kv)
	s.Load(7)

	s.Toggle(42)
	if !s.IsFavorite(42) {
		t.Fatal("expected 42 to be a favorite")
	}

	data, err := kv.Get(favorites.Key(7))
	if err != nil {
		t.Fatalf("expected persisted entry, got %v", err)
	}
	if string(data) != "[42]" {
		t.Errorf("expected [42] persisted, got %s", data)
	}
}

func TestToggleIsInvolution(t *testing.T) {
	s := favorites.New(memkv.New())
	s.Load(7)

	s.Toggle(1)
	s.Toggle(2)
	before := s.IDs()

	s.Toggle(2)
	s.Toggle(2)
	if got := s.IDs(); !reflect.DeepEqual(got, before) {
		t.Errorf("expected %v after double toggle, got %v", before, got)
	}
}

func TestToggleWithoutScopeIsNoop(t *testing.T) {
	kv := memkv.New()
	s := favorites.New(kv)

	s.Toggle(42)
	if s.IsFavorite(42) {
		t.Error("expected no favorite without an active scope")
	}
	if _, err := kv.Get(favorites.Key(0)); !errors.Is(err, storage.ErrNotFound) {
		t.Error("expected nothing persisted without an active scope")
	}
}

func TestClearKeepsDurableCopy(t *testing.T) {
	kv := memkv.New()
	s := favorites.New(kv)
	s.Load(7)
	s.Toggle(1)
	s.Toggle(3)

	s.Clear()
	if got := s.IDs(); len(got) != 0 {
		t.Fatalf("expected empty in-memory set after clear, got %v", got)
	}

	s.Load(7)
	if got := s.IDs(); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("expected persisted set restored after reload, got %v", got)
	}
}

func TestLoadSwitchesScopeWithoutMerge(t *testing.T) {
	kv := memkv.New()
	s := favorites.New(kv)

	s.Load(1)
	s.Toggle(10)

	s.Load(2)
	if s.IsFavorite(10) {
		t.Error("expected scope switch to drop the previous user's set")
	}

	s.Toggle(20)
	s.Load(1)
	if got := s.IDs(); !reflect.DeepEqual(got, []int{10}) {
		t.Errorf("expected user 1 set restored, got %v", got)
	}
}

func TestLoadCorruptEntryIsRemoved(t *testing.T) {
	kv := memkv.New()
	kv.Set(favorites.Key(7), []byte(`{not json`))

	s := favorites.New(kv)
	s.Load(7)

	if got := s.IDs(); len(got) != 0 {
		t.Errorf("expected empty set after corrupt entry, got %v", got)
	}
	if _, err := kv.Get(favorites.Key(7)); !errors.Is(err, storage.ErrNotFound) {
		t.Error("expected corrupt entry removed")
	}
}
