package normalizer

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortByRequired(t *testing.T) {
	mk := func(name string, required bool) *Parameter {
		return &Parameter{Model: Model{Name: name, IsRequired: required}}
	}
	params := []*Parameter{mk("a", false), mk("b", true), mk("c", false), mk("d", true), mk("e", false)}
	sortByRequired(params)
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, names(params))

	sortByRequired(nil)
}

// Required parameters precede optional ones, and each group keeps its
// input order.
func TestSortByRequiredIsStablePartition(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 50; round++ {
		n := r.IntN(20)
		params := make([]*Parameter, n)
		var wantRequired, wantOptional []*Parameter
		for i := range params {
			p := &Parameter{Model: Model{IsRequired: r.IntN(2) == 0}}
			params[i] = p
			if p.IsRequired {
				wantRequired = append(wantRequired, p)
			} else {
				wantOptional = append(wantOptional, p)
			}
		}
		sortByRequired(params)
		want := append(wantRequired, wantOptional...)
		for i := range want {
			assert.Same(t, want[i], params[i], "round %d index %d", round, i)
		}
	}
}
