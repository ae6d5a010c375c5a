package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathParamRegex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "single parameter", input: "/pets/{petId}", want: []string{"petId"}},
		{name: "multiple parameters", input: "/pets/{petId}/owners/{ownerId}", want: []string{"petId", "ownerId"}},
		{name: "no parameters", input: "/pets/all", want: []string{}},
		{name: "parameter at start", input: "{version}/pets", want: []string{"version"}},
		{name: "parameter inside segment", input: "/files/{name}.{ext}", want: []string{"name", "ext"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{}
			for _, m := range PathParamRegex.FindAllStringSubmatch(tt.input, -1) {
				got = append(got, m[1])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadableSegment(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "{id}", want: "by-id"},
		{input: "pets", want: "pets"},
		{input: "{name}.{ext}", want: "by-name.by-ext"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ReadableSegment(tt.input))
		})
	}
}
