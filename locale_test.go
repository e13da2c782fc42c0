package ubidi

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"
	"golang.org/x/text/language"
)

func TestDirectionForScript(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	cases := []struct {
		tag string
		dir Direction
	}{
		{"en-US", LeftToRight},
		{"de-DE", LeftToRight},
		{"ar", RightToLeft},
		{"fa", RightToLeft},
		{"he-IL", RightToLeft},
		{"ja", LeftToRight},
	}
	for _, c := range cases {
		lang := language.Make(c.tag)
		script, _ := lang.Script()
		if dir := directionForScript(script); dir != c.dir {
			t.Errorf("Expected direction %s for locale %s (script %s), have %s",
				c.dir, c.tag, script, dir)
		}
	}
}

func TestDirectionFromEnvironment(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	// whatever the environment, the hint must be a uniform direction
	dir := DirectionFromEnvironment()
	if dir != LeftToRight && dir != RightToLeft {
		t.Errorf("Expected a uniform direction hint, have %s", dir)
	}
	t.Logf("environment text direction: %s", dir)
}
