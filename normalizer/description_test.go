package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriberClean(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		stripHTML bool
		want      string
	}{
		{name: "empty", in: "", want: ""},
		{name: "trims", in: "  pets \n", want: "pets"},
		{name: "line endings", in: "a\r\nb", want: "a\nb"},
		{name: "html kept", in: "<b>bold</b>", want: "<b>bold</b>"},
		{name: "html stripped", in: "<p>Returns <b>all</b> pets</p>", stripHTML: true, want: "Returns all pets"},
		{name: "entities decoded", in: "cats &amp; dogs", stripHTML: true, want: "cats & dogs"},
		{name: "script removed", in: "ok<script>alert(1)</script>", stripHTML: true, want: "ok"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := describer{stripHTML: tt.stripHTML}
			assert.Equal(t, tt.want, d.clean(tt.in))
		})
	}
}

func TestStripHTMLOnOperations(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /pets:
    get:
      summary: <em>List</em> pets
      description: "Lists <a href='/docs'>pets</a>"
      responses:
        "200":
          description: ok
`
	n := New()
	n.StripHTML = true
	result, err := n.Normalize(t.Context(), parseDoc(t, doc))
	if !assert.NoError(t, err) {
		return
	}
	op := result.Operations()[0]
	assert.Equal(t, "List pets", op.Summary)
	assert.Equal(t, "Lists pets", op.Description)
}
