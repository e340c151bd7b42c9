package game

import (
	"strings"
	"testing"
)

func TestSimLog_FilterAndLast(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "player", CatWeapon, KeyShot, "wall at (9.0,3.0)", 6)
	sl.Add(2, "abc123", CatEnemy, KeyKill, "basic", 1)
	sl.Add(3, "player", CatWeapon, KeyShot, "hit abc123", 4)

	if n := sl.CountCategory(CatWeapon, KeyShot); n != 2 {
		t.Fatalf("expected 2 shots, got %d", n)
	}
	if n := len(sl.Filter("", "")); n != 3 {
		t.Fatalf("empty filter should match everything, got %d", n)
	}
	last, ok := sl.LastOf(CatWeapon, KeyShot)
	if !ok || last.Tick != 3 {
		t.Fatalf("expected the tick 3 shot, got %+v", last)
	}
	if !sl.HasEntry(CatEnemy, KeyKill, "bas") {
		t.Fatal("substring match failed")
	}
	if sl.HasEntry(CatEnemy, KeyKill, "armored") {
		t.Fatal("unexpected match")
	}
	if _, ok := sl.LastOf(CatMatch, KeyGameOver); ok {
		t.Fatal("no game over recorded")
	}
}

func TestSimLog_VerboseGate(t *testing.T) {
	quiet := NewSimLog(false)
	quiet.AddVerbose(1, "p", CatPlayer, KeyZoom, "true", 0)
	if len(quiet.Entries()) != 0 {
		t.Fatal("verbose entry recorded in quiet mode")
	}
	loud := NewSimLog(true)
	loud.AddVerbose(1, "p", CatPlayer, KeyZoom, "true", 0)
	if len(loud.Entries()) != 1 {
		t.Fatal("verbose entry dropped in verbose mode")
	}
}

func TestSimLog_TailAndFormat(t *testing.T) {
	sl := NewSimLog(false)
	for i := 1; i <= 5; i++ {
		sl.Add(i, "--", CatMatch, KeyStart, "", 0)
	}
	tail := sl.Tail(2)
	if len(tail) != 2 || tail[0].Tick != 4 || tail[1].Tick != 5 {
		t.Fatalf("unexpected tail %+v", tail)
	}
	if len(sl.Tail(50)) != 5 {
		t.Fatal("oversized tail should return everything")
	}
	out := sl.Format()
	if strings.Count(out, "\n") != 5 || !strings.Contains(out, "[T=0003]") {
		t.Fatalf("unexpected format output:\n%s", out)
	}
	sl.Reset()
	if len(sl.Entries()) != 0 {
		t.Fatal("reset should drop entries")
	}
}
