package flappy

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func jump() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func pause() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for id, title := range map[string]string{ID: "Flappy Bird", LiteID: "Flappy Lite"} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", id, err)
		}
		if g.ID() != id || g.Title() != title {
			t.Errorf("Create(%s) = %s/%s", id, g.ID(), g.Title())
		}
	}
}

func TestGameStartsOnJump(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if st := g.State(); st.Phase != "idle" || st.GameOver {
		t.Fatalf("initial state = %+v", st)
	}

	res := g.Step(jump())
	if res.State.Phase != "active" {
		t.Errorf("Phase after jump = %q, expected active", res.State.Phase)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() (core.GameState, Snapshot) {
		g := New()
		g.Reset(testRuntime(12345))
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%15 == 0 {
				in.Set(core.ActionJump)
			}
			g.Step(in)
		}
		snap, _ := g.Snapshot()
		return g.State(), snap
	}

	s1, f1 := run()
	s2, f2 := run()
	if s1 != s2 {
		t.Errorf("states differ: %+v vs %+v", s1, s2)
	}
	if f1 != f2 {
		t.Errorf("frames differ:\n%+v\n%+v", f1, f2)
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	// Pause is ignored before the match starts
	if g.Step(pause()).State.Paused {
		t.Fatal("pause should be ignored while idle")
	}

	g.Step(jump())
	if !g.Step(pause()).State.Paused {
		t.Fatal("pause should toggle on during a match")
	}

	frozen, _ := g.Snapshot()
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if snap, _ := g.Snapshot(); snap != frozen {
		t.Error("nothing should move while paused")
	}

	if g.Step(pause()).State.Paused {
		t.Fatal("second pause should resume")
	}
	g.Step(core.NewInputFrame())
	if snap, _ := g.Snapshot(); snap.Body == frozen.Body {
		t.Error("body should move after resume")
	}
}

func TestGameLiteHasNoRotation(t *testing.T) {
	g := NewLite()
	g.Reset(testRuntime(1))
	g.Step(jump())
	for i := 0; i < 20; i++ {
		g.Step(core.NewInputFrame())
	}

	snap, ok := g.Snapshot()
	if !ok {
		t.Fatal("Snapshot() unavailable")
	}
	if snap.Rotation != 0 {
		t.Errorf("lite rotation = %f, expected 0", snap.Rotation)
	}
}

func TestGameUsesHighScoreStore(t *testing.T) {
	g := New()
	g.SetHighScoreStore(&MemoryHighScores{best: 4})
	g.Reset(testRuntime(1))

	if g.State().HighScore != 4 {
		t.Errorf("HighScore = %d, expected 4", g.State().HighScore)
	}
}

func TestGameSink(t *testing.T) {
	sink := &recordingSink{}
	g := New()
	g.SetEventSink(sink)
	g.Reset(testRuntime(1))
	g.Step(jump())

	if len(sink.events) != 2 || sink.events[0] != EventStart || sink.events[1] != EventFlap {
		t.Errorf("sink events = %v, expected [start flap]", sink.events)
	}
}

func TestGameConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap_height: 5000\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(testRuntime(1))

	if g.Err() == nil {
		t.Fatal("Err() should report the invalid config")
	}
	if !g.State().GameOver {
		t.Error("a game that cannot start should report game over")
	}
	g.Step(jump()) // must not panic

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "CONFIG ERROR") {
		t.Error("render should show the config error")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD missing from row 0: %q", screen.Row(0))
	}
	if !strings.Contains(out, "GET READY") {
		t.Error("idle overlay missing")
	}

	// Ground line: (853 - 120) * 24 / 853 rounds down to row 20
	if r := screen.Get(0, 20); r != GroundChar && r != GroundStripe {
		t.Errorf("ground row starts with %q", r)
	}

	g.Step(jump())
	g.Render(screen)
	if strings.Contains(screen.String(), "GET READY") {
		t.Error("idle overlay should disappear once the match starts")
	}
}

func TestNoseGlyph(t *testing.T) {
	tests := []struct {
		rotation float64
		expected rune
	}{
		{25, '▲'},
		{0, '▶'},
		{-30, '▶'},
		{-45, '▼'},
		{-90, '▼'},
	}
	for _, tc := range tests {
		if got := noseGlyph(tc.rotation); got != tc.expected {
			t.Errorf("noseGlyph(%f) = %q, expected %q", tc.rotation, got, tc.expected)
		}
	}
}

func TestProjectionRect(t *testing.T) {
	snap := Snapshot{Width: 480, Height: 853}
	proj := newProjection(snap, core.NewScreen(48, 853))

	// One cell per world unit vertically, ten units per cell horizontally
	r := proj.rect(core.NewBox(100, 800, 20, 53))
	if r.X != 10 || r.W != 2 || r.Y != 0 || r.H != 53 {
		t.Errorf("rect() = %+v", r)
	}
}

func writeConfig(t *testing.T, body string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func TestGameTheme(t *testing.T) {
	writeConfig(t, "theme:\n  ground: red\n")

	g := New()
	g.Reset(testRuntime(1))
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if c := screen.GetCell(0, 20).Color; c != core.ColorRed {
		t.Errorf("ground colour = %v, expected red", c)
	}
	if c := screen.GetCell(0, 23).Color; c != DefaultPalette().Dirt {
		t.Errorf("dirt colour = %v, expected the default %v", c, DefaultPalette().Dirt)
	}
}

func TestGameUnknownThemeColour(t *testing.T) {
	writeConfig(t, "theme:\n  pipe: chartreuse\n")

	g := New()
	g.Reset(testRuntime(1))
	if !errors.Is(g.Err(), config.ErrInvalidConfig) {
		t.Errorf("Err() = %v, expected ErrInvalidConfig", g.Err())
	}
}

func TestPaletteFrom(t *testing.T) {
	pal, err := PaletteFrom(config.FlappyTheme{Pipe: "blue", Body: "bright_red"})
	if err != nil {
		t.Fatal(err)
	}
	if pal.Pipe != core.ColorBlue || pal.Body != core.ColorBrightRed || pal.Ground != core.ColorDefault {
		t.Errorf("PaletteFrom() = %+v", pal)
	}
}
