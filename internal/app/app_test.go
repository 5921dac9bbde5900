package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/five82/picklist/internal/config"
	"github.com/five82/picklist/internal/state"
)

func TestNewStore_SeedsFromConfig(t *testing.T) {
	cfg := config.Config{
		PlaceholderTitle: "Новая запись",
		Records:          []config.RecordConfig{{Code: 2, Title: "a"}, {Code: 5, Title: "b", SelectionCount: 1}},
	}

	store, err := NewStore(cfg, nil)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	store.AddItem()
	st := store.GetState()
	if st.Len() != 3 {
		t.Fatalf("list = %#v, want 3 records", st.List)
	}
	if added := st.List[2]; added.Code != 6 || added.Title != "Новая запись" {
		t.Fatalf("added = %#v, want code 6 with configured placeholder", added)
	}
}

func TestNewStore_DefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	store, err := NewStore(config.Default(), nil)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if got := store.GetState().MaxCode; got != 7 {
		t.Fatalf("MaxCode = %d, want 7", got)
	}
}

func TestNewStore_MissingListFails(t *testing.T) {
	_, err := NewStore(config.Config{}, nil)
	if !errors.Is(err, state.ErrMissingList) {
		t.Fatalf("NewStore error = %v, want ErrMissingList", err)
	}
}

func TestNewStore_LogsThroughStoreComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)

	store, err := NewStore(config.Config{Records: []config.RecordConfig{}}, logger)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	store.AddItem()

	if out := buf.String(); !strings.Contains(out, "component=store") {
		t.Fatalf("log output = %q, want component=store", out)
	}
}
