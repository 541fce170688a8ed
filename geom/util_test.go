package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/planar"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var pairComparer = cmp.Comparer(func(p1, p2 planar.Pair) bool {
	return p1.Distance(p2) <= 1e-9
})

var approx = cmp.Options{cmpopts.EquateApprox(0, 1e-9), pairComparer}
