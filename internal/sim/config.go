package sim

import "math"

// Kinematics are in NDC units; rates are per millisecond.

// Play-field bounds past which enemies and bullets are culled.
const (
	boundLeft   = -2.5
	boundRight  = 2.5
	boundTop    = 2.5
	boundBottom = -2.0
)

// Tracker.
const (
	MaxEnemies         = 4
	EnemyBulletSpeed   = 0.0018
	DifficultyPerEnemy = 1.0 / 20000
	StartDifficulty    = 1.0 / 4000
	playerBulletSpeed  = 0.006
	enemyAimSpread     = 0.3
)

// Player.
const (
	playerAnimFrames = 10
	playerAnimMillis = 333.3

	playerAccel    = 0.00036
	playerFriction = 0.00012
	playerMinVel   = 0.000072
	playerMaxVel   = 0.0036

	playerBoundH      = 1.1
	playerBoundTop    = 1.1
	playerBoundBottom = -1.1

	yawMax    = math.Pi/2 + math.Pi/4
	yawMin    = math.Pi/2 - math.Pi/4
	yawCentre = math.Pi / 2
	pitchMax  = math.Pi / 16

	yawTurn   = math.Pi / 4 * 0.006
	pitchTurn = pitchMax * 0.012
	yawRest   = math.Pi / 4 * 0.003
	pitchRest = pitchMax * 0.006

	playerRadius = 0.10
	playerSize   = 0.15

	bulletsPerShot    = 5
	bulletAngleExtra  = 1.5
	bulletAngleSpread = 0.1
	bulletOffsetX     = 0.1
	bulletOffsetY     = 0.1
)

var playerStart = [3]float64{0, -0.8, 0.8}

// Enemies.
const (
	enemyRadius     = 0.12
	enemySize       = 0.12
	enemyZ          = 0.8
	enemyLeftX      = -1.1
	enemyRightX     = 1.1
	enemyBottomY    = -2.0
	enemyTopY       = 2.5
	enemySpeed      = 0.002
	enemyTurn       = 0.0002
	attackWaitMin   = 500.0
	attackWaitMax   = 1500.0
	maxAttacks      = 2
	quadrantRetries = 4
)

// Bullets.
const (
	bulletRadius = 0.04

	playerBulletAnim = 1.0
	playerBulletW    = 0.04
	playerBulletH    = 0.025

	enemyBulletAnim = 800.0
	enemyBulletSize = 0.03
)
