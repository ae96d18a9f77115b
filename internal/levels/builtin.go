package levels

import (
	"github.com/vovakirdan/tui-crossing/internal/game"
)

// mustLevel parses a built-in descriptor and attaches its display name.
func mustLevel(name, desc string) *game.Level {
	lvl := game.MustParseLevel(desc)
	lvl.Name = name
	return lvl
}

// The classic campaign: a gentle difficulty ramp that introduces every
// item along the way.
func init() {
	Register(&Pack{
		ID:    "classic",
		Title: "Classic Crossing",
		Levels: []*game.Level{
			mustLevel("First Steps", "5:6:2,3:"+
				"GGGGG"+
				"GGGGG"+
				"SSSSS"+
				"SSSSS"+
				"GGGGG"+
				"GGGGG"),
			mustLevel("Rush Hour", "5:6:1,2,3:"+
				"GGGGG"+
				"SSSSS"+
				"SSSSS"+
				"SSSSS"+
				"GGGGG"+
				"GGGGG"+":"+
				"nnnnn"+
				"nnnnn"+
				"nnnnn"+
				"nnnnn"+
				"nnhnn"+
				"nnnnn"),
			mustLevel("River Bank", "6:7:2,4:"+
				"GGGGGG"+
				"WWGWWW"+
				"SSSSSS"+
				"GGGGGG"+
				"SSSSSS"+
				"GGGGGG"+
				"GGGGGG"+":"+
				"nnnnnn"+
				"nnnnnn"+
				"nnnnnn"+
				"nnnnsn"+
				"nnnnnn"+
				"nrnnnn"+
				"nnnnnn"),
			mustLevel("Key to the City", "7:7:1,3,5:"+
				"WWWGWWW"+
				"SSSSSSS"+
				"GGGWGGG"+
				"SSSSSSS"+
				"GGGGWGG"+
				"SSSSSSS"+
				"GGGGGGG"+":"+
				"nnnnnnn"+
				"nnnnnnn"+
				"nnnknnn"+
				"nnnnnnn"+
				"nhnnnnb"+
				"nnnnnnn"+
				"nnnnnnn"),
			mustLevel("Braided Streams", "8:8:1,2,4,6:"+
				"GWGGGGWG"+
				"SSSSSSSS"+
				"SSSSSSSS"+
				"GGWWGGGG"+
				"SSSSSSSS"+
				"GGGGWWGG"+
				"SSSSSSSS"+
				"GGGGGGGG"+":"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"gnnnnhnn"+
				"nnnnnnnn"+
				"nnnnnnns"+
				"nnnnnnnn"+
				"nnnnnnnn"),
			mustLevel("The Long Haul", "9:8:1,2,3,5,6:"+
				"WWGWWWGWW"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"GGGWGGWGG"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"GGGGGGGGG"+":"+
				"nnnnnnnnn"+
				"nnnnnnnnn"+
				"nnnnnnnnn"+
				"nnnnnnnnn"+
				"bnnnnonnr"+
				"nnnnnnnnn"+
				"nnnnnnnnn"+
				"nnnnnnnnn"),
		},
	})
}

// The rapids campaign: water everywhere. Rocks are not optional here.
func init() {
	Register(&Pack{
		ID:    "rapids",
		Title: "Rapids",
		Levels: []*game.Level{
			mustLevel("Shallow Ford", "6:6:3:"+
				"GGGGGG"+
				"WWWWWW"+
				"GGGGGG"+
				"SSSSSS"+
				"GGGGGG"+
				"GGGGGG"+":"+
				"nnnnnn"+
				"nnnnnn"+
				"nnnrnn"+
				"nnnnnn"+
				"hnnnns"+
				"nnnnnn"),
			mustLevel("Twin Currents", "7:7:2,4:"+
				"GGGGGGG"+
				"WWWWWWW"+
				"SSSSSSS"+
				"GGGGGGG"+
				"SSSSSSS"+
				"WWWGWWW"+
				"GGGGGGG"+":"+
				"nnnnnnn"+
				"nnnnnnn"+
				"nnnnnnn"+
				"nnnrnhn"+
				"nnnnnnn"+
				"nnnnnnn"+
				"nnnnnnb"),
			mustLevel("White Water", "8:7:1,5:"+
				"GGWWWWGG"+
				"SSSSSSSS"+
				"WWWWWWWW"+
				"GGGGGGGG"+
				"WWGGWWWW"+
				"SSSSSSSS"+
				"GGGGGGGG"+":"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnrnnnsn"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"gnnnhnnn"),
		},
	})
}

// The gauntlet campaign: wall-to-wall traffic and no item crutches
// until the second level.
func init() {
	Register(&Pack{
		ID:    "gauntlet",
		Title: "The Gauntlet",
		Levels: []*game.Level{
			mustLevel("Five Lanes", "7:7:1,2,3,4,5:"+
				"GGGGGGG"+
				"SSSSSSS"+
				"SSSSSSS"+
				"SSSSSSS"+
				"SSSSSSS"+
				"SSSSSSS"+
				"GGGGGGG"),
			mustLevel("Narrow Gate", "8:8:1,2,3,5,6:"+
				"WWWWGWWW"+
				"SSSSSSSS"+
				"SSSSSSSS"+
				"SSSSSSSS"+
				"GGGGGGGG"+
				"SSSSSSSS"+
				"SSSSSSSS"+
				"GGGGGGGG"+":"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnh"+
				"nnnnnnnn"+
				"nnnnnnnn"+
				"nnnnnnnn"),
			mustLevel("The Crucible", "9:9:1,2,3,4,6,7:"+
				"WWWWGWWWW"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"GGGGWGGGG"+
				"SSSSSSSSS"+
				"SSSSSSSSS"+
				"GGGGGGGGG"),
		},
	})
}
