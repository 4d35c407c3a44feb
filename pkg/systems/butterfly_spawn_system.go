package systems

import (
	"log"
	"math/rand"

	"github.com/decker502/butterfly/pkg/config"
	"github.com/decker502/butterfly/pkg/entities"
	"github.com/decker502/butterfly/pkg/game"
)

// ButterflySpawnSystem 定时补充蝴蝶
//
// 由调度器按固定间隔调用 Tick。上限是软上限：每次 Tick 时检查一次，
// 未达上限就生成一只。
type ButterflySpawnSystem struct {
	session *game.GameSession
	cfg     *config.GameConfig
	rng     *rand.Rand
}

// NewButterflySpawnSystem 创建蝴蝶生成系统
//
// 参数:
//   - session: 当前会话
//   - cfg: 游戏参数（上限、尺寸、速度范围）
//   - rng: 随机数源，测试时传入固定种子
func NewButterflySpawnSystem(session *game.GameSession, cfg *config.GameConfig, rng *rand.Rand) *ButterflySpawnSystem {
	log.Printf("[ButterflySpawnSystem] Initialized with interval=%v, max=%d", cfg.SpawnInterval(), cfg.MaxButterflies)
	return &ButterflySpawnSystem{
		session: session,
		cfg:     cfg,
		rng:     rng,
	}
}

// Tick 尝试生成一只蝴蝶，返回是否生成
func (s *ButterflySpawnSystem) Tick(canvasWidth, canvasHeight float64) bool {
	if !s.session.IsRunning() {
		return false
	}
	if s.session.ButterflyCount() >= s.cfg.MaxButterflies {
		return false
	}

	entities.NewButterflyEntity(s.session.EntityManager, s.rng, canvasWidth, canvasHeight, s.cfg)
	return true
}

// SpawnInitial 开局时生成初始数量的蝴蝶
func (s *ButterflySpawnSystem) SpawnInitial(canvasWidth, canvasHeight float64) {
	for i := 0; i < s.cfg.InitialButterflies; i++ {
		entities.NewButterflyEntity(s.session.EntityManager, s.rng, canvasWidth, canvasHeight, s.cfg)
	}
}
