package store_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tourplan/store"
)

func TestDecodeRunRejectsVersionMismatch(t *testing.T) {
	payload := []byte(`{"schema_version":99,"codec_version":1,"id":"r"}`)
	if _, err := store.DecodeRun(payload); !errors.Is(err, store.ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got %v", err)
	}
}

func TestEncodeRunStampsVersions(t *testing.T) {
	data, err := store.EncodeRun(store.Run{ID: "r", Tour: []int{1, 2}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	run, err := store.DecodeRun(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if run.ID != "r" || run.SchemaVersion != store.CurrentSchemaVersion {
		t.Fatalf("unexpected run: %+v", run)
	}
}

func TestNewStore(t *testing.T) {
	for _, kind := range []string{"", "memory", "sqlite", "badger"} {
		if _, err := store.NewStore(kind, "x"); err != nil {
			t.Fatalf("NewStore(%q): %v", kind, err)
		}
	}
	if _, err := store.NewStore("postgres", ""); err == nil {
		t.Fatal("expected unsupported backend error")
	}
	if err := store.CloseIfSupported(store.NewMemoryStore()); err != nil {
		t.Fatalf("close memory: %v", err)
	}
}
