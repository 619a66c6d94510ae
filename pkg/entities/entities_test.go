package entities

import (
	"math/rand"
	"testing"

	"github.com/decker502/cleandrop/pkg/components"
	"github.com/decker502/cleandrop/pkg/config"
	"github.com/decker502/cleandrop/pkg/ecs"
)

func TestNewDropEntity(t *testing.T) {
	tests := []struct {
		name    string
		kind    components.DropKind
		x       float64
		width   float64
		wantErr bool
	}{
		{name: "净水", kind: components.DropClean, x: 12, width: 37},
		{name: "污水", kind: components.DropDirty, x: 200, width: 34},
		{name: "宽度为0", kind: components.DropClean, x: 0, width: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewDropEntity(em, tt.kind, tt.x, tt.width)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewDropEntity() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
			if !ok {
				t.Fatal("drop should have a PositionComponent")
			}
			if pos.X != tt.x || pos.Y != 0 {
				t.Errorf("drop should start at (%g, 0), got (%g, %g)", tt.x, pos.X, pos.Y)
			}

			drop, ok := ecs.GetComponent[*components.DropComponent](em, id)
			if !ok {
				t.Fatal("drop should have a DropComponent")
			}
			if drop.Kind != tt.kind || drop.Width != tt.width {
				t.Errorf("unexpected drop %+v", drop)
			}
			if drop.Height != tt.width*config.DropHeightRatio {
				t.Errorf("height = %g, want %g", drop.Height, tt.width*config.DropHeightRatio)
			}
		})
	}
}

func TestNewDropEntityNilManager(t *testing.T) {
	if _, err := NewDropEntity(nil, components.DropClean, 0, 10); err == nil {
		t.Error("expected error for nil entity manager")
	}
}

func TestNewBucketEntityCentred(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewBucketEntity(em, config.FieldWidth, config.FieldHeight)
	if err != nil {
		t.Fatalf("NewBucketEntity() error = %v", err)
	}

	bucket, _ := ecs.GetComponent[*components.BucketComponent](em, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)

	// 340 × 0.22 = 74.8 → 下限 75
	if bucket.Width != 75 {
		t.Errorf("bucket width = %g, want 75", bucket.Width)
	}
	if bucket.Height != 60 {
		t.Errorf("bucket height = %g, want 60", bucket.Height)
	}
	if pos.X != (config.FieldWidth-75)/2 {
		t.Errorf("bucket should be centred, x = %g", pos.X)
	}
	if pos.Y != config.FieldHeight-10-60 {
		t.Errorf("bucket top = %g, want %g", pos.Y, config.FieldHeight-70)
	}
}

func TestNewBucketEntityInvalidField(t *testing.T) {
	if _, err := NewBucketEntity(ecs.NewEntityManager(), 0, 400); err == nil {
		t.Error("expected error for zero-width field")
	}
}

func TestNewSplashEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewSplashEntity(em, components.DropDirty, 120, 330)
	if err != nil {
		t.Fatalf("NewSplashEntity() error = %v", err)
	}

	splash, ok := ecs.GetComponent[*components.SplashComponent](em, id)
	if !ok || splash.Kind != components.DropDirty || splash.Size != config.SplashSize {
		t.Errorf("unexpected splash %+v", splash)
	}
	lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if !ok || lifetime.MaxLifetime != config.SplashDuration {
		t.Errorf("splash lifetime = %+v, want %g", lifetime, config.SplashDuration)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 120 || pos.Y != 330 {
		t.Errorf("splash at (%g, %g), want (120, 330)", pos.X, pos.Y)
	}
}

func TestShowMilestoneBannerReplacesText(t *testing.T) {
	em := ecs.NewEntityManager()

	first, err := ShowMilestoneBanner(em, "Great start!")
	if err != nil {
		t.Fatalf("ShowMilestoneBanner() error = %v", err)
	}

	// 模拟已显示一段时间
	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, first)
	lifetime.CurrentLifetime = 1.0

	second, err := ShowMilestoneBanner(em, "Halfway there!")
	if err != nil {
		t.Fatalf("ShowMilestoneBanner() error = %v", err)
	}

	if second != first {
		t.Errorf("expected banner %d to be reused, got %d", first, second)
	}
	banner, _ := ecs.GetComponent[*components.MilestoneBannerComponent](em, first)
	if banner.Message != "Halfway there!" {
		t.Errorf("banner message = %q", banner.Message)
	}
	if lifetime.CurrentLifetime != 0 {
		t.Errorf("banner lifetime should restart, got %g", lifetime.CurrentLifetime)
	}
	if n := len(ecs.GetEntitiesWith1[*components.MilestoneBannerComponent](em)); n != 1 {
		t.Errorf("expected exactly one banner, got %d", n)
	}
}

func TestShowMilestoneBannerSkipsDestroyed(t *testing.T) {
	em := ecs.NewEntityManager()
	first, _ := ShowMilestoneBanner(em, "Great start!")
	em.DestroyEntity(first)

	second, _ := ShowMilestoneBanner(em, "Halfway there!")
	if second == first {
		t.Error("a banner marked for destruction must not be reused")
	}
}

func TestNewConfettiBurst(t *testing.T) {
	em := ecs.NewEntityManager()
	rng := rand.New(rand.NewSource(7))

	ids, err := NewConfettiBurst(em, rng, 340, 456)
	if err != nil {
		t.Fatalf("NewConfettiBurst() error = %v", err)
	}
	if len(ids) != config.ConfettiCount {
		t.Fatalf("expected %d pieces, got %d", config.ConfettiCount, len(ids))
	}

	palette := make(map[uint32]bool, len(config.ConfettiPalette))
	for _, c := range config.ConfettiPalette {
		palette[c] = true
	}

	for _, id := range ids {
		piece, ok := ecs.GetComponent[*components.ConfettiComponent](em, id)
		if !ok {
			t.Fatalf("entity %d missing ConfettiComponent", id)
		}
		if piece.X < 0 || piece.X > 340-config.ConfettiSize {
			t.Errorf("piece x %g out of range", piece.X)
		}
		if piece.StartY != -20 || piece.FallDistance != 456*0.8 {
			t.Errorf("unexpected start/fall %g/%g", piece.StartY, piece.FallDistance)
		}
		if piece.Duration < config.ConfettiMinDuration || piece.Duration > config.ConfettiMaxDuration {
			t.Errorf("duration %g out of range", piece.Duration)
		}
		if piece.Spin != 360 && piece.Spin != -360 {
			t.Errorf("spin = %g, want ±360", piece.Spin)
		}
		rgb := uint32(piece.Color.R)<<16 | uint32(piece.Color.G)<<8 | uint32(piece.Color.B)
		if !palette[rgb] {
			t.Errorf("colour %06X not in palette", rgb)
		}

		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if lifetime.MaxLifetime != piece.Duration+config.ConfettiLinger {
			t.Errorf("lifetime %g, want %g", lifetime.MaxLifetime, piece.Duration+config.ConfettiLinger)
		}
	}
}

func TestNewProgressBarEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewProgressBarEntity(em, 20, 18, 300, 20)
	if err != nil {
		t.Fatalf("NewProgressBarEntity() error = %v", err)
	}

	bar, ok := ecs.GetComponent[*components.ProgressBarComponent](em, id)
	if !ok || bar.Width != 300 || bar.Fill != 0 {
		t.Errorf("unexpected bar %+v", bar)
	}
	flash, ok := ecs.GetComponent[*components.FlashEffectComponent](em, id)
	if !ok || flash.IsActive {
		t.Errorf("progress bar should carry an inactive flash, got %+v", flash)
	}
}
