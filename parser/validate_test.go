package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasnormalize/oaserrors"
)

func TestStructureValidation(t *testing.T) {
	tests := []struct {
		name     string
		data     string
		wantMsgs []string
	}{
		{
			name: "valid oas3",
			data: "openapi: 3.0.0\ninfo: {title: t, version: '1'}\npaths: {}\n",
		},
		{
			name:     "missing info fields",
			data:     "openapi: 3.0.0\ninfo: {}\npaths: {}\n",
			wantMsgs: []string{"must have a title", "must have a version string"},
		},
		{
			name:     "oas3 without paths or webhooks",
			data:     "openapi: 3.1.0\ninfo: {title: t, version: '1'}\n",
			wantMsgs: []string{"either 'paths' or 'webhooks'"},
		},
		{
			name:     "oas2 missing paths",
			data:     "swagger: '2.0'\ninfo: {title: t, version: '1'}\n",
			wantMsgs: []string{"Paths object is required"},
		},
		{
			name: "bad path and duplicate operation ids",
			data: `openapi: 3.0.0
info: {title: t, version: '1'}
paths:
  pets:
    get:
      operationId: dup
      responses: {}
  /stores:
    get:
      operationId: dup
      responses: {}
`,
			wantMsgs: []string{"path must begin with '/'", "duplicate operationId"},
		},
		{
			name: "body parameter in oas3",
			data: `openapi: 3.0.0
info: {title: t, version: '1'}
paths:
  /pets:
    post:
      parameters:
        - name: pet
          in: body
        - in: query
      responses: {}
`,
			wantMsgs: []string{"not a valid parameter location", "Parameter must have a name"},
		},
		{
			name: "cookie parameter in oas2",
			data: `swagger: '2.0'
info: {title: t, version: '1'}
paths:
  /pets:
    get:
      parameters:
        - name: session
          in: cookie
          type: string
      responses: {}
`,
			wantMsgs: []string{"not a valid parameter location"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New().ParseBytes([]byte(tt.data))
			require.NoError(t, err)
			require.Len(t, result.Errors, len(tt.wantMsgs))
			for i, want := range tt.wantMsgs {
				assert.True(t, errors.Is(result.Errors[i], oaserrors.ErrValidation))
				assert.Contains(t, result.Errors[i].Error(), want)
			}
		})
	}
}
