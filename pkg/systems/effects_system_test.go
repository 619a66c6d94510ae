package systems

import (
	"math"
	"testing"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

func TestLifetimeUpdate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 0.4})

	system.Update(0.25)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 0.25 {
		t.Errorf("Expected CurrentLifetime=0.25, got %f", lifetime.CurrentLifetime)
	}
	if lifetime.IsExpired || em.IsMarkedForDestroy(id) {
		t.Error("Entity should not be expired yet")
	}
	if math.Abs(lifetime.Progress()-0.625) > 1e-9 {
		t.Errorf("Progress() = %g, want 0.625", lifetime.Progress())
	}
}

func TestLifetimeExpiration(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewLifetimeSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: 0.4})

	system.Update(0.5)

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !lifetime.IsExpired {
		t.Error("Entity should be expired")
	}
	if !em.IsMarkedForDestroy(id) {
		t.Error("Expired entity should be marked for destruction")
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 {
		t.Errorf("Expected 0 entities after cleanup, got %d", em.EntityCount())
	}
}

func TestFlashEffectLifecycle(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewFlashEffectSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.FlashEffectComponent{})

	TriggerFlash(em, FlashColorFor(components.DropDirty))

	flash, _ := ecs.GetComponent[*components.FlashEffectComponent](em, id)
	if !flash.IsActive || flash.Color != components.FlashRed || flash.Duration != config.FlashDuration {
		t.Fatalf("unexpected flash after trigger: %+v", flash)
	}

	system.Update(0.1)
	if !flash.IsActive {
		t.Error("flash should still be active after 100ms")
	}

	// 闪烁中再次触发：换色并重新计时
	TriggerFlash(em, components.FlashGreen)
	if flash.Color != components.FlashGreen || flash.Elapsed != 0 {
		t.Errorf("retrigger should restart the flash, got %+v", flash)
	}

	system.Update(0.25)
	if flash.IsActive {
		t.Error("flash should end after its duration")
	}
	if !ecs.HasComponent[*components.FlashEffectComponent](em, id) {
		t.Error("flash component should stay attached for the next catch")
	}
}

func TestProgressBarEasesTowardTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewProgressBarSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ProgressBarComponent{Width: 300, Height: 20})

	SetProgressTarget(em, 0.5, false)
	bar, _ := ecs.GetComponent[*components.ProgressBarComponent](em, id)

	system.Update(tick)
	if bar.Fill <= 0 || bar.Fill >= 0.5 {
		t.Errorf("fill after one tick = %g, want strictly between 0 and 0.5", bar.Fill)
	}

	prev := bar.Fill
	for i := 0; i < 120; i++ {
		system.Update(tick)
		if bar.Fill < prev {
			t.Fatalf("fill should increase monotonically toward the target")
		}
		prev = bar.Fill
	}
	if bar.Fill != 0.5 {
		t.Errorf("fill should settle on the target, got %g", bar.Fill)
	}
}

func TestSetProgressTarget(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ProgressBarComponent{Fill: 0.7, Target: 0.7})

	SetProgressTarget(em, 1.4, false)
	bar, _ := ecs.GetComponent[*components.ProgressBarComponent](em, id)
	if bar.Target != 1 || bar.Fill != 0.7 {
		t.Errorf("target should clamp to 1 without snapping, got %+v", bar)
	}

	SetProgressTarget(em, 0, true)
	if bar.Target != 0 || bar.Fill != 0 {
		t.Errorf("snap should reset fill, got %+v", bar)
	}
}

func TestConfettiFallsWithEaseIn(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewConfettiSystem(em)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ConfettiComponent{
		StartY:       -20,
		FallDistance: 320,
		Spin:         -360,
		Duration:     2,
		Y:            -20,
	})
	piece, _ := ecs.GetComponent[*components.ConfettiComponent](em, id)

	system.Update(1) // t = 0.5, eased = 0.25
	if math.Abs(piece.Y-60) > 1e-9 {
		t.Errorf("y at half time = %g, want 60", piece.Y)
	}
	if math.Abs(piece.Rotation+90) > 1e-9 {
		t.Errorf("rotation at half time = %g, want -90", piece.Rotation)
	}

	system.Update(1.5) // 超过时长后停在终点
	if piece.Y != 300 || piece.Rotation != -360 {
		t.Errorf("final state y=%g rot=%g, want 300/-360", piece.Y, piece.Rotation)
	}
}
