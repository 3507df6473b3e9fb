package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string {
	return g.id
}

func (g stubGame) Title() string {
	return strings.ToUpper(g.id)
}

func (g stubGame) Reset(core.RuntimeConfig) {}

func (g stubGame) Resize(core.RuntimeConfig) {}

func (g stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (g stubGame) Render(*core.Screen) {}

func (g stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("ID() = %q, expected stub_a", g.ID())
	}

	ids := IDs()
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("IDs() = %v, expected sorted stub_a before stub_b", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	Register("stub_known", func() Game { return stubGame{id: "stub_known"} })

	_, err := Create("no_such_game")
	if err == nil {
		t.Fatal("Create() of an unknown ID should fail")
	}
	if !strings.Contains(err.Error(), "stub_known") {
		t.Errorf("error %q should list the registered games", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
