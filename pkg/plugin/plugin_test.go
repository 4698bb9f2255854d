package plugin

import (
	"testing"

	"github.com/volfym/sillydelay/pkg/framework/plugin"
)

type fakePlugin struct {
	id string
}

func (f fakePlugin) GetInfo() plugin.Info {
	return plugin.Info{ID: f.id}
}

func (f fakePlugin) CreateProcessor(sampleRate float64) Processor {
	return nil
}

func TestRegisterRoundTrip(t *testing.T) {
	Register(fakePlugin{id: "com.example.first"})
	Register(fakePlugin{id: "com.example.second"})

	got := Registered()
	if got == nil {
		t.Fatal("Registered() = nil")
	}
	if id := got.GetInfo().ID; id != "com.example.second" {
		t.Errorf("registered ID = %q, want last registration to win", id)
	}
}
