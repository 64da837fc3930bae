package main

import (
	"strings"
	"testing"

	"github.com/milk9111/bobross/levels"
)

func TestEmbeddedLevelsPass(t *testing.T) {
	for _, name := range levels.Names() {
		lvl, err := levels.LoadLevelFromFS(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		problems, err := checkLevel(lvl)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if len(problems) > 0 {
			t.Fatalf("%s: %v", name, problems)
		}
	}
}

func TestCheckLevelReportsEmbeddedStart(t *testing.T) {
	lvl := &levels.Level{
		Name:      "buried",
		Width:     3,
		Height:    3,
		TileSize:  16,
		Layers:    [][]int{{0, 0, 0, 1, 1, 1, 1, 1, 1}},
		LayerMeta: []levels.LayerMeta{{Physics: true}},
		Entities:  []levels.Entity{{Type: "PlayerStart", X: 24, Y: 32}},
	}
	problems, err := checkLevel(lvl)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if len(problems) != 1 || !strings.Contains(problems[0], "player start") {
		t.Fatalf("unexpected problems %v", problems)
	}
}

func TestLevelOverview(t *testing.T) {
	lvl := &levels.Level{
		Width:     3,
		Height:    2,
		TileSize:  16,
		Layers:    [][]int{{0, 0, 0, 1, 1, 1}},
		LayerMeta: []levels.LayerMeta{{Physics: true}},
		Entities: []levels.Entity{
			{Type: "PlayerStart", X: 8, Y: 8},
			{Type: "Coin", X: 40, Y: 8},
		},
	}
	want := "P.c\n###\n"
	if got := levelOverview(lvl); got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}
