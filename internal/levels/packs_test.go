package levels

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/game"
)

func testPack(id string) *Pack {
	return &Pack{
		ID:    id,
		Title: "Test",
		Levels: []*game.Level{
			mustLevel("Only", "3:3:1:GGGSSSGGG"),
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	Register(testPack("packs-test-roundtrip"))

	p, ok := Get("packs-test-roundtrip")
	if !ok {
		t.Fatal("A registered pack should be retrievable")
	}
	if p.Title != "Test" {
		t.Errorf("Unexpected title %q", p.Title)
	}
	if !Exists("packs-test-roundtrip") {
		t.Error("Exists should see the registered pack")
	}
	if Exists("packs-test-missing") {
		t.Error("Exists should not invent packs")
	}
	if _, ok := Get("packs-test-missing"); ok {
		t.Error("Get should report missing packs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Registering the same ID twice should panic")
		}
	}()

	Register(testPack("packs-test-duplicate"))
	Register(testPack("packs-test-duplicate"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		pack *Pack
		want string // substring of the expected error, empty for valid
	}{
		{"valid", testPack("x"), ""},
		{"no id", &Pack{}, "no id"},
		{"no levels", &Pack{ID: "x"}, "no levels"},
		{
			"water on the bottom row",
			&Pack{ID: "x", Levels: []*game.Level{game.MustParseLevel("3:2:0:GGGWWW")}},
			"bottom row",
		},
		{
			"no goal tile",
			&Pack{ID: "x", Levels: []*game.Level{game.MustParseLevel("2:2:1:SSGG")}},
			"row 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.pack)
			if tt.want == "" {
				if err != nil {
					t.Errorf("Expected a valid pack, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected an error mentioning %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected an error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}
