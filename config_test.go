package cow

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseConfig(t *testing.T) {
	tests := []struct {
		in   string
		want Config
	}{
		{"", Config{}},
		{"trace", Config{Trace: true}},
		{"Trace=false,events", Config{Events: true}},
		{",strict=1,,events=true", Config{Strict: true, Events: true}},
		{" trace , strict ", Config{Trace: true, Strict: true}},
	}
	for _, tc := range tests {
		got, err := ParseConfig(tc.in)
		if err != nil {
			t.Fatalf("ParseConfig(%q) failed: %v", tc.in, err)
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseConfig(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestParseConfigRejectsUnknownSwitch(t *testing.T) {
	for _, in := range []string{"verbose", "trace=maybe"} {
		_, err := ParseConfig(in)
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("ParseConfig(%q): expected ErrInvalidConfig, got %v", in, err)
		}
	}
}

func TestConfigureReturnsPrevious(t *testing.T) {
	old := Configure(Config{Strict: true})
	defer Configure(old)
	if !Debug().Strict {
		t.Fatalf("expected Strict to be switched on")
	}
	prev := Configure(Config{})
	if !prev.Strict {
		t.Fatalf("expected previous config to be returned")
	}
}

func TestDebugWhileReconfiguring(t *testing.T) {
	old := Configure(Config{})
	defer Configure(old)
	a, b := Config{}, Config{Trace: true, Strict: true}
	var wg sync.WaitGroup
	torn := make(chan Config, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if c := Debug(); c != a && c != b {
					torn <- c
					return
				}
			}
		}()
	}
	for j := 0; j < 1000; j++ {
		if j%2 == 0 {
			Configure(b)
		} else {
			Configure(a)
		}
	}
	wg.Wait()
	close(torn)
	for c := range torn {
		t.Errorf("Debug returned a config which was never set: %+v", c)
	}
}

func TestCloneEventsArePublished(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cow")
	defer teardown()
	//
	old := Configure(Config{Events: true, Trace: true})
	defer Configure(old)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, ok := Subscribe(ctx, 4)
	if !ok {
		t.Fatalf("cannot subscribe to clone events")
	}
	defer Unsubscribe(ch)
	//
	r := NewRef[*link, *link](makeChain(3))
	other := r.Share()
	from := r.Identity()
	EnsureExclusive(&other, nil)
	select {
	case msg := <-ch:
		ev, ok := msg.(CloneEvent)
		if !ok {
			t.Fatalf("expected CloneEvent, got %T", msg)
		}
		if ev.Lineage != r.Lineage() || ev.From != from || ev.To != other.Identity() || ev.Copies != 1 {
			t.Errorf("unexpected clone event %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("no clone event received")
	}
}
