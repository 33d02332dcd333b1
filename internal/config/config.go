// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 640
	ScreenHeight = 400

	// Player
	PlayerFrameWidth     = 42
	PlayerFrameHeight    = 54
	PlayerAnimFrames     = 4
	PlayerAnimSpeed      = 6 // ticks per animation step
	PlayerScale          = 0.7
	PlayerWidth          = PlayerFrameWidth * PlayerScale
	PlayerHeight         = PlayerFrameHeight * PlayerScale
	PlayerStartX         = 60
	PlayerStartY         = ScreenHeight/2 - 18
	PlayerSpeed          = 3.5
	PlayerLives          = 3
	PlayerShootCooldown  = 10
	PlayerInvincibility  = 60
	PlayerFlickerPeriod  = 6
	PlayerBulletSpeed    = 8.0
	PlayerBulletOffsetY  = 3 // muzzle sits slightly above the vertical centre
	ScorePerKill         = 100
	HitParticleCount     = 10
	ExplosionParticleNum = 12

	// Projectiles
	BulletRadius        = 4.0
	BulletDeathMargin   = 16 // past the edge a bullet is marked dead
	BulletPruneMargin   = 20 // past the edge an owner drops the bullet
	EnemyBulletSpeed    = -6.0
	BulletTrailLength   = 12
	EnemySpawnOffsetX   = 16
	EnemySpawnMinY      = 24
	EnemySpawnMaxY      = ScreenHeight - 60
	EnemyBaseSpeedMin   = 2
	EnemyBaseSpeedMax   = 4
	EnemyShimmerPeriodS = 0.22

	// Spawning
	SpawnBaseMin       = 48
	SpawnBaseMax       = 90
	SpawnFloorMin      = 22
	SpawnFloorMax      = 38
	SpawnMinPerLevel   = 10
	SpawnMaxPerLevel   = 20
	DifficultyScoreDiv = 200.0
	DifficultyCap      = 2.5

	// Particles
	ParticleMinRadius = 1
	ParticleMaxRadius = 3
	ParticleMaxSpeed  = 2
	ParticleMinLife   = 16
	ParticleMaxLife   = 28

	// Game over overlay delay, real time
	GameOverOverlayDelayMs = 600

	// HUD
	HUDScoreX       = 12
	HUDScoreY       = 26
	HUDLifeX        = 16
	HUDLifeY        = 52
	HUDLifeSpacing  = 34
	HUDLifeScale    = 0.46
	MenuFadeAlpha   = 0.4
	PanelWidth      = 360
	PanelHeight     = 220
	PanelButtonW    = 140
	PanelButtonH    = 34
	PanelLineHeight = 20
)

var (
	BackgroundColor = color.RGBA{17, 9, 10, 255}
	SkyTopColor     = color.RGBA{0x22, 0x23, 0x25, 255}
	SkyMidColor     = color.RGBA{0x19, 0x1a, 0x1b, 255}
	SkyBottomColor  = color.RGBA{0x11, 0x09, 0x0a, 255}
	SkylineColors   = []color.RGBA{
		{0x20, 0x1e, 0x22, 255},
		{0x2c, 0x24, 0x28, 255},
		{0x3a, 0x2a, 0x30, 255},
	}
	ScannerColor    = color.RGBA{255, 0, 0, 255}
	EmberColor      = color.RGBA{0xff, 0x33, 0x33, 255}
	EmberDimColor   = color.RGBA{0xff, 0x99, 0x99, 255}
	FadeColor       = color.RGBA{0, 0, 0, 255}
	PlayerColor     = color.RGBA{0xbb, 0xbb, 0xbb, 255} // placeholder when no sprite
	BulletColor     = color.RGBA{0xff, 0x33, 0x33, 255}
	BulletTrail     = color.RGBA{0xbb, 0x11, 0x22, 255}
	EnemyBulletCol  = color.RGBA{0xaa, 0xee, 0xff, 255}
	EnemyBulletTail = color.RGBA{0xbb, 0xbb, 0xee, 255}
	EnemyBodyColor  = color.RGBA{0x7f, 0xb6, 0xc7, 255}
	EnemyJointColor = color.RGBA{0xd2, 0xf4, 0xff, 255}
	EnemyCoreColor  = color.RGBA{0x00, 0xea, 0xff, 255}
	EnemyEyeColor   = color.RGBA{0xff, 0x33, 0x33, 255}
	EnemyFootColor  = color.RGBA{0x33, 0x33, 0x33, 255}
	ShadowColor     = color.RGBA{0x11, 0x11, 0x11, 255}
	WhiteColor      = color.RGBA{255, 255, 255, 255}

	// Explosion particles cycle through these: i%3==0, then i%2==0, then the rest.
	ExplosionRed   = color.RGBA{0xff, 0x33, 0x33, 255}
	ExplosionCyan  = color.RGBA{0xaa, 0xf6, 0xff, 255}
	ExplosionSteel = color.RGBA{0x7f, 0xb6, 0xc7, 255}

	// Player hit particles alternate by parity.
	HitEvenColor = color.RGBA{0xaa, 0xee, 0xff, 255}
	HitOddColor  = color.RGBA{0xbb, 0xbb, 0xbb, 255}

	ScoreTextColor  = color.RGBA{0xff, 0x33, 0x33, 255}
	SkullColor      = color.RGBA{0xbb, 0xbb, 0xbb, 255}
	SkullEyeColor   = color.RGBA{255, 0, 0, 255}
	SkullJawColor   = color.RGBA{0x88, 0x88, 0x88, 255}
	PanelColor      = color.RGBA{16, 16, 20, 230}
	PanelBorder     = color.RGBA{255, 0, 0, 255}
	TitleColor      = color.RGBA{255, 0, 0, 255}
	SubtitleColor   = color.RGBA{0xbb, 0xbb, 0xbb, 255}
	HintColor       = color.RGBA{0xaa, 0xee, 0xff, 255}
	ButtonColor     = color.RGBA{0x3a, 0x2a, 0x30, 255}
	ButtonTextColor = color.RGBA{240, 240, 240, 255}
)
