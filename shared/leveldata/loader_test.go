package leveldata

import (
	"image/color"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sourceStyleJSON = `{
  "Platforms": [
    {"Position": {"x": 100, "y": 390}, "Size": {"x": 200, "y": 20}, "Color": {"r": 130, "g": 130, "b": 130, "a": 255}},
    {"Position": {"x": 0, "y": 1040}, "Size": {"x": 1920, "y": 40}, "Color": {"r": 80, "g": 80, "b": 80, "a": 255}}
  ],
  "Collectibles": [
    {"Position": {"x": 180, "y": 340}, "Size": {"x": 30, "y": 30}, "Color": {"r": 253, "g": 249, "b": 0, "a": 255}}
  ],
  "Enemies": [
    {"Position": {"x": 700, "y": 1000}, "Size": {"x": 40, "y": 40}, "Color": {"r": 200, "g": 122, "b": 255, "a": 255}, "Speed": 2, "MoveRange": 150}
  ]
}`

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{"levels/level1.json": {Data: []byte(sourceStyleJSON)}}

	level, err := Load(fsys, "levels/level1.json")
	require.NoError(t, err)

	require.Len(t, level.Platforms, 2)
	require.Len(t, level.Collectibles, 1)
	require.Len(t, level.Enemies, 1)
	assert.Equal(t, Placement{X: 0, Y: 1040, W: 1920, H: 40, Color: color.RGBA{R: 80, G: 80, B: 80, A: 255}},
		level.Platforms[1], "platform order or geometry")
	assert.Equal(t, 2.0, level.Enemies[0].Speed)
	assert.Equal(t, 150.0, level.Enemies[0].MoveRange)
	assert.Equal(t, DefaultSpawn, level.Spawn)
	assert.Equal(t, color.RGBA{R: 253, G: 249, B: 0, A: 255}, level.Collectibles[0].Color)
}

func TestLoadJSONDefaults(t *testing.T) {
	doc := `{"spawn": {"x": 10, "y": 20},
	  "enemies": [{"position": {"x": 1, "y": 2}, "size": {"x": 3, "y": 4}, "color": {"r": 1, "g": 2, "b": 3}}]}`
	fsys := fstest.MapFS{"l.json": {Data: []byte(doc)}}

	level, err := Load(fsys, "l.json")
	require.NoError(t, err)
	require.Len(t, level.Enemies, 1)

	e := level.Enemies[0]
	assert.Equal(t, DefaultEnemySpeed, e.Speed)
	assert.Equal(t, DefaultEnemyMoveRange, e.MoveRange)
	assert.Equal(t, uint8(255), e.Color.A, "omitted alpha")
	assert.Equal(t, Point{X: 10, Y: 20}, level.Spawn)
}

func TestLoadErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"broken.json":    {Data: []byte(`{"platforms": [`)},
		"null.json":      {Data: []byte(`null`)},
		"nosize.json":    {Data: []byte(`{"platforms": [{"position": {"x": 1, "y": 1}}]}`)},
		"badtype.json":   {Data: []byte(`{"platforms": [{"position": {"x": "left", "y": 1}, "size": {"x": 1, "y": 1}}]}`)},
		"zerosize.json":  {Data: []byte(`{"collectibles": [{"position": {"x": 1, "y": 1}, "size": {"x": 0, "y": 1}}]}`)},
		"badspeed.json":  {Data: []byte(`{"enemies": [{"position": {"x": 1, "y": 1}, "size": {"x": 1, "y": 1}, "speed": -1}]}`)},
		"badcolor.json":  {Data: []byte(`{"platforms": [{"position": {"x": 1, "y": 1}, "size": {"x": 1, "y": 1}, "color": {"r": 300, "g": 0, "b": 0}}]}`)},
		"empty.yaml":     {Data: []byte("  \n")},
		"badtype.yaml":   {Data: []byte("platforms:\n  - position: {x: [1], y: 1}\n    size: {x: 1, y: 1}\n")},
		"level.txt":      {Data: []byte("platforms")},
		"broken.tmx":     {Data: []byte("<map")},
		"halfpoint.yaml": {Data: []byte("spawn: {x: 1}\n")},
	}

	tests := []struct {
		name string
		file string
		want error
	}{
		{"missing json", "absent.json", ErrMissingFile},
		{"missing tmx", "absent.tmx", ErrMissingFile},
		{"syntax error", "broken.json", ErrMalformedDocument},
		{"null document", "null.json", ErrMalformedDocument},
		{"empty yaml", "empty.yaml", ErrMalformedDocument},
		{"unknown extension", "level.txt", ErrMalformedDocument},
		{"broken tmx", "broken.tmx", ErrMalformedDocument},
		{"missing size", "nosize.json", ErrMissingOrInvalidField},
		{"wrong json type", "badtype.json", ErrMissingOrInvalidField},
		{"wrong yaml type", "badtype.yaml", ErrMissingOrInvalidField},
		{"zero size", "zerosize.json", ErrMissingOrInvalidField},
		{"negative speed", "badspeed.json", ErrMissingOrInvalidField},
		{"channel out of range", "badcolor.json", ErrMissingOrInvalidField},
		{"half a point", "halfpoint.yaml", ErrMissingOrInvalidField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(fsys, tt.file)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestFieldErrorNamesField(t *testing.T) {
	fsys := fstest.MapFS{"l.json": {Data: []byte(`{"platforms": [{"position": {"x": 1, "y": 1}, "size": {"x": 1, "y": 1}}, {"position": {"x": 1}}]}`)}}

	_, err := Load(fsys, "l.json")

	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "platforms[1].position.y", fe.Field)
}

func TestLoadYAML(t *testing.T) {
	doc := `name: towers
spawn: {x: 60, y: 900}
platforms:
  - position: {x: 0, y: 1040}
    size: {x: 1920, y: 40}
collectibles:
  - position: {x: 500, y: 300}
    size: {x: 30, y: 30}
enemies:
  - position: {x: 800, y: 1000}
    size: {x: 40, y: 40}
    speed: 4
    moveRange: 0
`
	fsys := fstest.MapFS{"towers.yaml": {Data: []byte(doc)}}

	level, err := Load(fsys, "towers.yaml")
	require.NoError(t, err)
	require.Len(t, level.Platforms, 1)
	require.Len(t, level.Enemies, 1)

	assert.Equal(t, "towers", level.Name)
	assert.Equal(t, Point{X: 60, Y: 900}, level.Spawn)
	assert.Equal(t, DefaultPlatformColor, level.Platforms[0].Color)
	assert.Equal(t, 4.0, level.Enemies[0].Speed)
	assert.Zero(t, level.Enemies[0].MoveRange)
}

const caveTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="60" height="34" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="6">
 <objectgroup id="1" name="platforms">
  <object id="1" x="100" y="390" width="200" height="20">
   <properties>
    <property name="color" value="#ff404040"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="collectibles">
  <object id="2" x="180" y="340" width="30" height="30"/>
 </objectgroup>
 <objectgroup id="3" name="enemies">
  <object id="3" x="700" y="1000" width="40" height="40">
   <properties>
    <property name="speed" type="float" value="2.5"/>
    <property name="moveRange" type="float" value="120"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="spawn">
  <object id="4" x="120" y="300"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/cave.tmx": {Data: []byte(caveTMX)}}

	level, err := Load(fsys, "levels/cave.tmx")
	require.NoError(t, err)
	require.Len(t, level.Platforms, 1)
	require.Len(t, level.Collectibles, 1)
	require.Len(t, level.Enemies, 1)

	assert.Equal(t, "cave", level.Name)
	assert.Equal(t, color.RGBA{R: 64, G: 64, B: 64, A: 255}, level.Platforms[0].Color)
	assert.Equal(t, DefaultCollectibleColor, level.Collectibles[0].Color)
	assert.Equal(t, 2.5, level.Enemies[0].Speed)
	assert.Equal(t, 120.0, level.Enemies[0].MoveRange)
	assert.Equal(t, Point{X: 120, Y: 300}, level.Spawn)
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#80102030")
	require.NoError(t, err)
	assert.Equal(t, []int{0x10, 0x20, 0x30, 0x80}, []int{*c.R, *c.G, *c.B, *c.A})

	_, err = parseHexColor("red")
	assert.Error(t, err, "non-hex colour")
}

func TestListResolveSuggest(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/level1.json":   {Data: []byte(`{}`)},
		"levels/towers.yaml":   {Data: []byte(`name: towers`)},
		"levels/caverns.tmx":   {Data: []byte(caveTMX)},
		"levels/readme.md":     {Data: []byte(`#`)},
		"elsewhere/other.json": {Data: []byte(`{}`)},
	}

	names, err := List(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"caverns.tmx", "level1.json", "towers.yaml"}, names)

	p, ok := Resolve(fsys, "levels", "towers")
	assert.True(t, ok)
	assert.Equal(t, "levels/towers.yaml", p)
	_, ok = Resolve(fsys, "levels", "other")
	assert.False(t, ok, "Resolve should not look outside dir")

	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"levl1", "level1.json", true},
		{"Cavern.json", "caverns.tmx", true},
		{"spaceship", "", false},
	}
	for _, tt := range tests {
		got, ok := Suggest(tt.name, names)
		assert.Equal(t, tt.wantOK, ok, "Suggest(%s)", tt.name)
		assert.Equal(t, tt.want, got, "Suggest(%s)", tt.name)
	}
}
