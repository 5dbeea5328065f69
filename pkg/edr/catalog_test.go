package edr_test

import (
	"reflect"
	"testing"

	"weatherornot/pkg/edr"
)

func TestSelectParameters(t *testing.T) {
	t.Run("empty hint yields the default set", func(t *testing.T) {
		params := edr.SelectParameters("")
		if len(params) == 0 {
			t.Fatal("default set must not be empty")
		}
		for _, p := range params {
			if _, ok := edr.Catalog[p]; !ok {
				t.Errorf("parameter %q not in catalog", p)
			}
		}
	})

	t.Run("hints add activity-specific parameters", func(t *testing.T) {
		base := edr.SelectParameters("")
		withSki := edr.SelectParameters("A day of skiing in the Tatras")
		if len(withSki) <= len(base) {
			t.Errorf("ski hint added nothing: %v", withSki)
		}

		found := false
		for _, p := range withSki {
			if p == "snow-depth_gnd-surf" {
				found = true
			}
		}
		if !found {
			t.Error("ski hint should add snow depth")
		}
	})

	t.Run("selection is deterministic and duplicate-free", func(t *testing.T) {
		hint := "skiing then ice skating, maybe a barbecue"
		first := edr.SelectParameters(hint)
		for i := 0; i < 10; i++ {
			if next := edr.SelectParameters(hint); !reflect.DeepEqual(first, next) {
				t.Fatalf("selection order unstable:\n%v\n%v", first, next)
			}
		}

		seen := map[string]bool{}
		for _, p := range first {
			if seen[p] {
				t.Errorf("duplicate parameter %q", p)
			}
			seen[p] = true
		}
	})
}
