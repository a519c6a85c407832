package input

import (
	"testing"
	"time"

	"github.com/phanxgames/interactable"
)

func newTestTarget(t *testing.T, name string, shape HitShape, opts ...interactable.Option) *Target {
	t.Helper()
	cfg := interactable.DefaultConfig()
	cfg.Name = name
	opts = append([]interactable.Option{interactable.WithClock(interactable.NewManualClock(time.Unix(0, 0)))}, opts...)
	el, err := interactable.New(cfg, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	el.SetEnabled(true)
	return &Target{Element: el, Shape: shape}
}

func TestInjectClick(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "btn", HitRect{Width: 100, Height: 100})
	d.AddTarget(tgt)

	var clicked bool
	tgt.Element.OnClick(func(ctx interactable.ClickContext) {
		clicked = true
		if ctx.Pointer == nil || ctx.Pointer.ID != 0 {
			t.Error("expected mouse pointer 0")
		}
	})

	d.InjectClick(50, 50)
	if d.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", d.Pending())
	}

	// Frame 1: press
	d.processInput()
	if d.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", d.Pending())
	}
	if clicked {
		t.Error("click should not fire on press frame")
	}
	if !tgt.Element.HasFocus() || !tgt.Element.HasPress() {
		t.Error("expected focus and press after frame 1")
	}

	// Frame 2: release → click fires
	d.processInput()
	if !clicked {
		t.Error("click should fire on release frame")
	}
	if tgt.Element.HasPress() {
		t.Error("press should clear on release")
	}
}

func TestInjectDragStartsGesture(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "slider", HitRect{Width: 400, Height: 100})
	tgt.UnitSize = 100
	d.AddTarget(tgt)

	// press at 10, moves at 30/50/70, release at 90
	d.InjectDrag(10, 10, 90, 10, 5)

	d.processInput()
	if tgt.Element.State().Is(interactable.StateGesture) {
		t.Fatal("gesture should not start on press")
	}
	d.processInput()
	if !tgt.Element.State().Is(interactable.StateGesture) {
		t.Fatal("expected gesture after moving 0.2 units")
	}

	for d.Pending() > 0 {
		d.processInput()
	}
	if tgt.Element.State().Is(interactable.StateGesture) {
		t.Error("gesture should clear on release")
	}
}

func TestHoverFocus(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "btn", HitCircle{CenterX: 50, CenterY: 50, Radius: 20})
	d.AddTarget(tgt)

	d.InjectHover(50, 50)
	d.processInput()
	if !tgt.Element.HasFocus() {
		t.Fatal("expected focus on hover")
	}
	if !d.Focusing(0, tgt.Element) {
		t.Error("expected pointer 0 to focus the target")
	}

	d.InjectHover(500, 500)
	d.processInput()
	if tgt.Element.HasFocus() {
		t.Error("expected focus to leave")
	}
	if d.Focusing(0, tgt.Element) {
		t.Error("pointer 0 should no longer focus the target")
	}
	if d.Focusing(42, tgt.Element) {
		t.Error("out of range pointer should not focus")
	}
}

func TestReleaseOutsideCancelsClick(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "btn", HitRect{Width: 100, Height: 100})
	d.AddTarget(tgt)

	d.InjectPress(50, 50)
	d.InjectRelease(500, 500)
	d.processInput()
	d.processInput()

	if tgt.Element.ClickCount() != 0 {
		t.Error("release outside the target should not click")
	}
	if tgt.Element.HasPress() {
		t.Error("release outside should still clear the press")
	}
}

func TestHitTestZOrder(t *testing.T) {
	d := NewDriver(nil)
	back := newTestTarget(t, "back", HitRect{Width: 200, Height: 200})
	front := newTestTarget(t, "front", HitRect{X: 50, Y: 50, Width: 50, Height: 50})
	front.Z = 1
	d.AddTarget(front)
	d.AddTarget(back)

	if got := d.hitTest(60, 60); got != front {
		t.Error("expected front target")
	}
	if got := d.hitTest(10, 10); got != back {
		t.Error("expected back target")
	}
	if got := d.hitTest(500, 500); got != nil {
		t.Error("expected no target")
	}

	d.InjectClick(60, 60)
	d.processInput()
	d.processInput()
	if front.Element.ClickCount() != 1 || back.Element.ClickCount() != 0 {
		t.Errorf("clicks front=%d back=%d, want 1/0",
			front.Element.ClickCount(), back.Element.ClickCount())
	}
}

func TestRemoveTargetReleases(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "btn", HitRect{Width: 100, Height: 100})
	d.AddTarget(tgt)

	d.InjectPress(50, 50)
	d.processInput()
	d.RemoveTarget(tgt)

	if tgt.Element.HasPress() || tgt.Element.HasFocus() {
		t.Error("removed target should be released and unfocused")
	}
	if len(d.Group().Elements()) != 0 {
		t.Error("element should leave the group")
	}
	if d.hitTest(50, 50) != nil {
		t.Error("removed target should not hit")
	}
}

func TestFocusSurvivesReenable(t *testing.T) {
	d := NewDriver(nil)
	var tgt *Target
	tgt = newTestTarget(t, "btn", HitRect{Width: 100, Height: 100},
		interactable.WithFocusValidator(func(p interactable.PointerID) bool {
			return d.Focusing(p, tgt.Element)
		}))
	d.AddTarget(tgt)

	d.InjectHover(50, 50)
	d.processInput()
	tgt.Element.SetEnabled(false)
	if tgt.Element.HasFocus() {
		t.Fatal("disabled element should not show focus")
	}
	tgt.Element.SetEnabled(true)
	if !tgt.Element.HasFocus() {
		t.Error("focus should return for a pointer still hovering")
	}
}

func TestUpdateTicksGroup(t *testing.T) {
	d := NewDriver(nil)
	tgt := newTestTarget(t, "btn", HitRect{Width: 100, Height: 100})
	d.AddTarget(tgt)

	var frames int
	tgt.Element.OnUpdate(func(int, bool) { frames++ })
	d.InjectHover(10, 10)
	d.Update()
	if frames != 1 {
		t.Errorf("frames = %d, want 1", frames)
	}
}

func TestTargetAction(t *testing.T) {
	tgt := &Target{}
	if tgt.action() != DefaultAction {
		t.Errorf("action = %q, want %q", tgt.action(), DefaultAction)
	}
	tgt.Action = "menu"
	if tgt.action() != "menu" {
		t.Errorf("action = %q, want menu", tgt.action())
	}
	if got := tgt.local(250, 50); got.X != 2.5 || got.Y != 0.5 {
		t.Errorf("local = %+v, want {2.5 0.5 0}", got)
	}
}
