package registry

import (
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

type fakeGame struct {
	id, title string
}

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func factory(id, title string) Factory {
	return func() Game { return &fakeGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", factory("zz-test", "ZZ Test"))
	Register("aa-test", factory("aa-test", "AA Test"))

	if !Exists("zz-test") || Exists("missing") {
		t.Error("Exists() disagrees with registrations")
	}

	info, ok := Info("aa-test")
	if !ok || info.Title != "AA Test" {
		t.Errorf("Info() = %+v/%v", info, ok)
	}

	g1, err := Create("zz-test")
	if err != nil {
		t.Fatal(err)
	}
	g2, _ := Create("zz-test")
	if g1 == g2 {
		t.Error("Create() should return a fresh instance each time")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown game should fail")
	}

	// List is sorted by ID
	list := List()
	aa, zz := -1, -1
	for i, gi := range list {
		switch gi.ID {
		case "aa-test":
			aa = i
		case "zz-test":
			zz = i
		}
	}
	if aa < 0 || zz < 0 || aa > zz {
		t.Errorf("List() = %v", list)
	}
}

func TestRegisterPanics(t *testing.T) {
	Register("dup-test", factory("dup-test", "Dup"))

	tests := []struct {
		name string
		id   string
		f    Factory
	}{
		{"duplicate", "dup-test", factory("dup-test", "Dup")},
		{"empty id", "", factory("", "")},
		{"nil factory", "nil-test", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register() should panic")
				}
			}()
			Register(tc.id, tc.f)
		})
	}
}
