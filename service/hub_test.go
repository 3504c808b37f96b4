package service

import (
	"errors"
	"strings"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	log     *[]string
	initErr error
	gotArgs []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	f.gotArgs = args
	*f.log = append(*f.log, "init "+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start "+f.name)
	return nil
}
func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop "+f.name)
	return nil
}

func TestHubLifecycleOrder(t *testing.T) {
	var log []string
	h := NewHub()
	store := &fakeService{name: "store", log: &log}
	audio := &fakeService{name: "audio", log: &log}
	term := &fakeService{name: "terminal", deps: []string{"store"}, log: &log}

	h.Register(term, "screen")
	h.Register(audio, true)
	h.Register(store)

	if err := h.InitAll(); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	h.StopAll()

	want := "init audio,init store,init terminal," +
		"start audio,start store,start terminal," +
		"stop terminal,stop store,stop audio"
	if got := strings.Join(log, ","); got != want {
		t.Errorf("Expected %s\ngot      %s", want, got)
	}
	if len(term.gotArgs) != 1 || term.gotArgs[0] != "screen" {
		t.Errorf("Expected registered args forwarded, got %v", term.gotArgs)
	}
	if order := h.Order(); len(order) != 3 || order[2] != "terminal" {
		t.Errorf("Unexpected order %v", order)
	}
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	h := NewHub()
	h.Register(&fakeService{name: "a", log: &log})
	h.Register(&fakeService{name: "b", log: &log, initErr: errors.New("boom")})

	err := h.InitAll()
	if err == nil || !strings.Contains(err.Error(), "b init failed") {
		t.Fatalf("Expected init failure, got %v", err)
	}
	if got := strings.Join(log, ","); got != "init a,init b,stop a" {
		t.Errorf("Unexpected rollback sequence %s", got)
	}
}

func TestHubDependencyErrors(t *testing.T) {
	var log []string

	h := NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"missing"}, log: &log})
	if err := h.InitAll(); err == nil {
		t.Error("Expected unregistered dependency error")
	}

	h = NewHub()
	h.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	if err := h.InitAll(); err == nil || !strings.Contains(err.Error(), "circular") {
		t.Errorf("Expected circular dependency error, got %v", err)
	}

	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("Expected duplicate registration error")
	}
}

func TestMustGet(t *testing.T) {
	var log []string
	h := NewHub()
	svc := &fakeService{name: "a", log: &log}
	h.Register(svc)

	if got := MustGet[*fakeService](h, "a"); got != svc {
		t.Error("Expected registered instance")
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected panic for missing service")
		}
	}()
	MustGet[*fakeService](h, "nope")
}
