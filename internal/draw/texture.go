package draw

// TextureID names an image asset. Hosts resolve ids by Name; the simulation
// only ever refers to the symbolic id.
type TextureID int

const (
	TexNone TextureID = iota

	// Terrain.
	TexHillsGrass
	TexHillsDirt
	TexDesertSand
	TexDesertSandstone
	TexIceSnow
	TexIceWall

	// Decorations.
	TexGlyphs
	TexPyramid
	TexDesertTile
	TexSnowmanBody

	// Effects and actors.
	TexSpark
	TexEnemy1
	TexEnemyBullet1
	TexEnemyBullet2
	TexEnemyBullet3
	TexEnemyBullet4
	TexPlayerBullet
	TexPlayer
	TexPlayerShoot1
	TexPlayerShoot2
	TexPlayerShoot3
	TexPlayerShoot4
	TexPlayerShoot5
	TexPlayerShoot6
	TexPlayerShoot7
	TexPlayerShoot8
	TexPlayerShoot9
	TexPlayerShoot10

	texCount
)

type textureInfo struct {
	name     string
	fallback RGB
}

var textures = [texCount]textureInfo{
	TexNone:            {"", White},
	TexHillsGrass:      {"hills_grass", RGB{R: 88, G: 150, B: 64}},
	TexHillsDirt:       {"hills_dirt", RGB{R: 110, G: 80, B: 52}},
	TexDesertSand:      {"desert_sand", RGB{R: 222, G: 196, B: 130}},
	TexDesertSandstone: {"desert_sandstone", RGB{R: 180, G: 140, B: 90}},
	TexIceSnow:         {"ice_snow", RGB{R: 236, G: 244, B: 250}},
	TexIceWall:         {"ice_wall", RGB{R: 150, G: 196, B: 220}},
	TexGlyphs:          {"glyphs", RGB{R: 170, G: 130, B: 80}},
	TexPyramid:         {"pyramid", RGB{R: 206, G: 170, B: 104}},
	TexDesertTile:      {"desert_tile", RGB{R: 196, G: 160, B: 110}},
	TexSnowmanBody:     {"snowman_body", RGB{R: 240, G: 244, B: 248}},
	TexSpark:           {"spark", RGB{R: 255, G: 255, B: 230}},
	TexEnemy1:          {"enemy_1", RGB{R: 200, G: 60, B: 70}},
	TexEnemyBullet1:    {"enemy_bullet_1", RGB{R: 255, G: 110, B: 40}},
	TexEnemyBullet2:    {"enemy_bullet_2", RGB{R: 255, G: 140, B: 60}},
	TexEnemyBullet3:    {"enemy_bullet_3", RGB{R: 255, G: 170, B: 80}},
	TexEnemyBullet4:    {"enemy_bullet_4", RGB{R: 255, G: 140, B: 60}},
	TexPlayerBullet:    {"player_bullet", RGB{R: 120, G: 240, B: 255}},
	TexPlayer:          {"player", RGB{R: 90, G: 140, B: 230}},
	TexPlayerShoot1:    {"player_shoot_1", RGB{R: 100, G: 150, B: 235}},
	TexPlayerShoot2:    {"player_shoot_2", RGB{R: 110, G: 160, B: 240}},
	TexPlayerShoot3:    {"player_shoot_3", RGB{R: 120, G: 170, B: 245}},
	TexPlayerShoot4:    {"player_shoot_4", RGB{R: 130, G: 180, B: 250}},
	TexPlayerShoot5:    {"player_shoot_5", RGB{R: 140, G: 190, B: 255}},
	TexPlayerShoot6:    {"player_shoot_6", RGB{R: 140, G: 190, B: 255}},
	TexPlayerShoot7:    {"player_shoot_7", RGB{R: 130, G: 180, B: 250}},
	TexPlayerShoot8:    {"player_shoot_8", RGB{R: 120, G: 170, B: 245}},
	TexPlayerShoot9:    {"player_shoot_9", RGB{R: 110, G: 160, B: 240}},
	TexPlayerShoot10:   {"player_shoot_10", RGB{R: 100, G: 150, B: 235}},
}

func (t TextureID) valid() bool { return t >= 0 && t < texCount }

// Name is the asset name, "" for TexNone or unknown ids.
func (t TextureID) Name() string {
	if !t.valid() {
		return ""
	}
	return textures[t].name
}

// Fallback is the flat colour a host uses when it has no image for t.
func (t TextureID) Fallback() RGB {
	if !t.valid() {
		return White
	}
	return textures[t].fallback
}

// Textures lists every texture that names an asset, in id order.
func Textures() []TextureID {
	out := make([]TextureID, 0, int(texCount)-1)
	for t := TexNone + 1; t < texCount; t++ {
		out = append(out, t)
	}
	return out
}

var (
	EnemyBulletFrames = []TextureID{TexEnemyBullet1, TexEnemyBullet2, TexEnemyBullet3, TexEnemyBullet4}
	PlayerShootFrames = []TextureID{
		TexPlayerShoot1, TexPlayerShoot2, TexPlayerShoot3, TexPlayerShoot4, TexPlayerShoot5,
		TexPlayerShoot6, TexPlayerShoot7, TexPlayerShoot8, TexPlayerShoot9, TexPlayerShoot10,
	}
)

// UV helpers for shapes authored in [-1,1] local coordinates.
func XToTex(x float64) float64 { return (x + 1) / 2 }
func YToTex(y float64) float64 { return 1 - (y+1)/2 }
