package control

import "testing"

func TestButtonVisibility(t *testing.T) {
	c, _ := newTestController(t)

	type want struct {
		visible, enabled []Button
	}
	check := func(mode string, v View, w want) {
		t.Helper()
		vis := map[Button]bool{}
		en := map[Button]bool{}
		for _, b := range w.visible {
			vis[b] = true
		}
		for _, b := range w.enabled {
			en[b] = true
		}
		for b := Button(0); b < ButtonCount; b++ {
			got := v.Buttons[b]
			if got.Visible != vis[b] {
				t.Fatalf("%s: %s visible = %v", mode, v.Label(b), got.Visible)
			}
			if got.Enabled != en[b] {
				t.Fatalf("%s: %s enabled = %v", mode, v.Label(b), got.Enabled)
			}
		}
	}

	idle := []Button{ButtonStart, ButtonStep, ButtonEditor, ButtonSpeed, ButtonReset}
	check("idle", c.View(), want{visible: idle, enabled: idle})

	mustHandle(t, c, cmd(CmdEnterEditor))
	edit := []Button{ButtonDone, ButtonClear}
	check("edit", c.View(), want{visible: edit, enabled: edit})

	mustHandle(t, c, cmd(CmdExitEditor), cmd(CmdToggleRun))
	check("running", c.View(), want{visible: idle, enabled: []Button{ButtonStart, ButtonSpeed}})
}

func TestViewReflectsState(t *testing.T) {
	c, _ := newTestController(t)
	mustHandle(t, c, cmd(CmdEnterEditor), PointerDown(5, 6), cmd(CmdPointerUp), cmd(CmdExitEditor), SetSpeed(30))

	v := c.View()
	if !v.Alive(5, 6) || v.Alive(6, 5) || v.Alive(-1, 0) || v.Alive(0, 100) {
		t.Fatal("view cells do not match the board")
	}
	if v.Population != 1 || v.Generation != 0 {
		t.Fatalf("population=%d generation=%d", v.Population, v.Generation)
	}
	if v.SpeedMs != 70 || v.Slider() != 30 {
		t.Fatalf("speed=%d slider=%d", v.SpeedMs, v.Slider())
	}
	if v.Label(ButtonStart) != "Start" {
		t.Fatalf("idle start label = %q", v.Label(ButtonStart))
	}
	mustHandle(t, c, cmd(CmdToggleRun))
	if got := c.View().Label(ButtonStart); got != "Stop" {
		t.Fatalf("running start label = %q", got)
	}
}

func TestCommandString(t *testing.T) {
	cases := map[string]Command{
		"PointerDown(2,3)": PointerDown(2, 3),
		"SetSpeed(40)":     SetSpeed(40),
		"Reset":            {Kind: CmdReset},
		"Kind(99)":         {Kind: 99},
	}
	for want, c := range cases {
		if got := c.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
