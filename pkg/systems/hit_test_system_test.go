package systems

import (
	"testing"

	"github.com/decker502/butterfly/pkg/components"
	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/ecs"
	"github.com/decker502/butterfly/pkg/game"
)

// TestHitTestNewestWins 重叠时后生成的蝴蝶被移除
func TestHitTestNewestWins(t *testing.T) {
	session := newRunningSession(t)
	placeButterfly(session, 100, 100)
	placeButterfly(session, 100, 100)
	placeButterfly(session, 100, 100)
	ids := session.ButterflyIDs()

	system := NewHitTestSystem(session, config.DefaultGameConfig())
	if !system.HandleClick(110, 100) {
		t.Fatal("click should hit")
	}

	if session.Score != 1 {
		t.Errorf("Score: got %d, want 1", session.Score)
	}
	remaining := session.ButterflyIDs()
	if len(remaining) != 2 {
		t.Fatalf("remaining: got %d, want 2 (at most one removal per click)", len(remaining))
	}
	if session.EntityManager.Exists(ids[2]) {
		t.Error("newest butterfly should have been removed")
	}
	if remaining[0] != ids[0] || remaining[1] != ids[1] {
		t.Errorf("remaining ids: got %v, want %v", remaining, ids[:2])
	}
}

// TestHitTestPrefersNewerEvenIfFarther 按生成顺序倒序检查，不选最近的
func TestHitTestPrefersNewerEvenIfFarther(t *testing.T) {
	session := newRunningSession(t)
	placeButterfly(session, 100, 100)
	placeButterfly(session, 120, 100)
	ids := session.ButterflyIDs()

	NewHitTestSystem(session, config.DefaultGameConfig()).HandleClick(101, 100)

	if !session.EntityManager.Exists(ids[0]) || session.EntityManager.Exists(ids[1]) {
		t.Error("the newer butterfly within range should be removed first")
	}
}

// TestHitTestRadiusIsStrict 距离恰好等于命中半径不算命中
func TestHitTestRadiusIsStrict(t *testing.T) {
	cfg := config.DefaultGameConfig()
	tests := []struct {
		name    string
		clickX  float64
		clickY  float64
		wantHit bool
	}{
		{"center", 200, 200, true},
		{"just inside", 200 + cfg.HitRadius - 0.01, 200, true},
		{"exactly on radius", 200, 200 + cfg.HitRadius, false},
		{"diagonal outside", 222, 222, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newRunningSession(t)
			placeButterfly(session, 200, 200)

			hit := NewHitTestSystem(session, cfg).HandleClick(tt.clickX, tt.clickY)
			if hit != tt.wantHit {
				t.Errorf("hit: got %v, want %v", hit, tt.wantHit)
			}
			wantScore := 0
			if tt.wantHit {
				wantScore = 1
			}
			if session.Score != wantScore {
				t.Errorf("Score: got %d, want %d", session.Score, wantScore)
			}
		})
	}
}

// TestHitTestOnlyWhileRunning 非进行中阶段点击不得分
func TestHitTestOnlyWhileRunning(t *testing.T) {
	for _, phase := range []game.Phase{game.PhaseMenu, game.PhasePaused, game.PhaseEnded} {
		session := newRunningSession(t)
		placeButterfly(session, 100, 100)
		session.Phase = phase

		if NewHitTestSystem(session, config.DefaultGameConfig()).HandleClick(100, 100) {
			t.Errorf("%v: click should be ignored", phase)
		}
		if session.Score != 0 || session.ButterflyCount() != 1 {
			t.Errorf("%v: state changed (score=%d, count=%d)", phase, session.Score, session.ButterflyCount())
		}
	}
}

// TestHitTestScoreMonotonic 每次命中恰好加一分，未命中不变
func TestHitTestScoreMonotonic(t *testing.T) {
	session := newRunningSession(t)
	for i := 0; i < 5; i++ {
		placeButterfly(session, float64(100+i*100), 300)
	}
	system := NewHitTestSystem(session, config.DefaultGameConfig())

	clicks := [][2]float64{{100, 300}, {50, 50}, {300, 310}, {300, 310}, {500, 300}}
	last := 0
	for i, c := range clicks {
		hit := system.HandleClick(c[0], c[1])
		want := last
		if hit {
			want++
		}
		if session.Score != want {
			t.Fatalf("click %d: Score got %d, want %d", i, session.Score, want)
		}
		last = session.Score
	}
	if session.Score != 3 {
		t.Errorf("final Score: got %d, want 3", session.Score)
	}

	// 被移除的蝴蝶不再拥有位置组件
	for _, id := range session.ButterflyIDs() {
		if _, ok := ecs.GetComponent[*components.PositionComponent](session.EntityManager, id); !ok {
			t.Errorf("butterfly %d lost its position", id)
		}
	}
}
