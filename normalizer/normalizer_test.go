package normalizer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasnormalize/oaserrors"
)

const filterDoc = `openapi: 3.0.3
info:
  title: Items
  version: "1.0"
paths:
  /items:
    get:
      operationId: listItems
      tags: [items]
      parameters:
        - name: api-version
          in: query
          required: true
          schema:
            type: string
        - name: filter
          in: query
          schema:
            $ref: '#/components/schemas/Filter'
        - name: X-Trace
          in: header
          schema:
            type: string
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/Item'
components:
  schemas:
    Filter:
      type: object
      required: [status]
      properties:
        status:
          type: string
          enum: [open, closed]
        limit:
          type: integer
          format: int32
          maximum: 100
    Item:
      type: object
      properties:
        id:
          type: string
`

func TestFilterExpansion(t *testing.T) {
	result := normalizeDoc(t, filterDoc)
	op := findOperation(t, result, "GET", "/items")

	assert.Equal(t, []string{"status", "limit"}, names(op.Query))
	assert.Equal(t, []string{"xTrace"}, names(op.Header))
	// required first, otherwise declaration order
	assert.Equal(t, []string{"status", "limit", "xTrace"}, names(op.All))

	status := op.Query[0]
	assert.Equal(t, LocationQuery, status.In)
	assert.Equal(t, "status", status.Prop)
	assert.True(t, status.IsRequired)
	assert.False(t, status.IsDefinition)
	assert.Empty(t, status.MediaType)
	assert.Equal(t, ExportEnum, status.Export)
	require.Len(t, status.Enum, 2)
	assert.Equal(t, "OPEN", status.Enum[0].Name)

	limit := op.Query[1]
	assert.False(t, limit.IsRequired)
	assert.Equal(t, "int32", limit.Type)
	require.NotNil(t, limit.Maximum)
	assert.InDelta(t, 100.0, *limit.Maximum, 0)

	assert.Nil(t, op.Body)
	assert.Empty(t, op.BodyExpanded)
	require.Len(t, op.Results, 1)
	assert.Equal(t, ExportArray, op.Results[0].Export)
	assert.Equal(t, "Item", op.Results[0].Type)
	assert.Equal(t, []string{"Item"}, op.Imports)
}

func TestVersionMarkerExcluded(t *testing.T) {
	oas2 := `swagger: "2.0"
info:
  title: t
  version: "1"
paths:
  /things:
    parameters:
      - name: api-version
        in: query
        type: string
    get:
      parameters:
        - name: api-version
          in: query
          required: true
          type: string
        - name: name
          in: query
          type: string
      responses:
        200:
          description: ok
`
	oas3 := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /v{api-version}/things:
    parameters:
      - name: api-version
        in: path
        required: true
        schema:
          type: string
    get:
      parameters:
        - name: name
          in: query
          schema:
            type: string
      responses:
        "200":
          description: ok
`
	for name, doc := range map[string]string{"oas2": oas2, "oas3": oas3} {
		t.Run(name, func(t *testing.T) {
			result := normalizeDoc(t, doc)
			require.Equal(t, 1, result.OperationCount)
			op := result.Operations()[0]
			assert.NotContains(t, props(op.All), DefaultVersionMarker)
			assert.Equal(t, []string{"name"}, names(op.All))
			assert.Equal(t, "getThings", op.Name)
		})
	}

	t.Run("custom marker", func(t *testing.T) {
		n := New()
		n.VersionMarker = "name"
		result, err := n.Normalize(context.Background(), parseDoc(t, oas2))
		require.NoError(t, err)
		op := result.Operations()[0]
		// the required operation-level declaration sorts first
		assert.Equal(t, []string{"apiVersion", "apiVersion"}, names(op.All))
		assert.True(t, op.All[0].IsRequired)
	})

	t.Run("marker disabled", func(t *testing.T) {
		n := New()
		n.VersionMarker = ""
		result, err := n.Normalize(context.Background(), parseDoc(t, oas2))
		require.NoError(t, err)
		op := result.Operations()[0]
		// OAS 2.0 keeps path-level and operation-level declarations alike
		assert.Equal(t, []string{"apiVersion", "apiVersion", "name"}, names(op.All))
	})
}

func TestPathParameterShadowsOperationParameter(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /items/{id}:
    parameters:
      - name: id
        in: path
        required: true
        schema:
          type: string
    get:
      parameters:
        - name: id
          in: query
          schema:
            $ref: '#/components/schemas/Id'
        - name: q
          in: query
          schema:
            type: string
        - name: q
          in: header
          schema:
            type: integer
      responses:
        "200":
          description: ok
components:
  schemas:
    Id:
      type: string
`
	op := findOperation(t, normalizeDoc(t, doc), "GET", "/items/{id}")

	assert.Equal(t, []string{"id", "q"}, names(op.All))
	require.Len(t, op.PathParams, 1)
	assert.Equal(t, LocationPath, op.PathParams[0].In)
	assert.Equal(t, []string{"q"}, names(op.Query))
	assert.Empty(t, op.Header)
	// the dropped query id contributed no import
	assert.Empty(t, op.Imports)
}

func TestExpandedPropertiesAreDeduplicated(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /search:
    get:
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
        - name: paging
          in: query
          schema:
            $ref: '#/components/schemas/Paging'
      responses:
        "200":
          description: ok
components:
  schemas:
    Paging:
      type: object
      properties:
        limit:
          type: string
        offset:
          type: integer
`
	op := findOperation(t, normalizeDoc(t, doc), "GET", "/search")
	assert.Equal(t, []string{"limit", "offset"}, names(op.Query))
	assert.Equal(t, "int64", op.Query[0].Type, "first occurrence wins")
}

const bodyDoc = `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /items:
    post:
      operationId: createItem
      parameters:
        - name: dryRun
          in: query
          schema:
            type: boolean
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/NewItem'
      responses:
        "201":
          description: created
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Item'
        "400":
          description: bad request
  /items/{id}/blob:
    put:
      operationId: uploadBlob
      parameters:
        - name: id
          in: path
          required: true
          schema:
            type: string
      requestBody:
        content:
          application/octet-stream:
            schema:
              type: string
              format: binary
      responses:
        "204":
          description: stored
components:
  schemas:
    NewItem:
      type: object
      required: [b]
      properties:
        a:
          type: string
        b:
          $ref: '#/components/schemas/Owner'
    Owner:
      type: object
      properties:
        name:
          type: string
    Item:
      type: object
      properties:
        id:
          type: string
`

func TestJSONBodyExplosion(t *testing.T) {
	op := findOperation(t, normalizeDoc(t, bodyDoc), "POST", "/items")

	assert.Nil(t, op.Body)
	require.Len(t, op.BodyExpanded, 2)
	for _, p := range op.BodyExpanded {
		assert.Equal(t, LocationBody, p.In)
		assert.Equal(t, "application/json", p.MediaType)
		assert.False(t, p.IsDefinition)
	}
	assert.Equal(t, []string{"a", "b"}, props(op.BodyExpanded))
	assert.Equal(t, "application/json", op.BodyMediaType)

	// b is required and moves ahead; a and dryRun keep their order
	assert.Equal(t, []string{"b", "dryRun", "a"}, names(op.All))
	assert.Equal(t, ExportReference, op.BodyExpanded[1].Export)
	assert.Equal(t, []string{"Item", "Owner"}, op.Imports)

	require.Len(t, op.Results, 1)
	assert.Equal(t, 201, op.Results[0].Code)
	assert.Equal(t, []*OperationError{{Code: 400, Description: "bad request"}}, op.Errors)
}

func TestBinaryBodyKeptWhole(t *testing.T) {
	op := findOperation(t, normalizeDoc(t, bodyDoc), "PUT", "/items/{id}/blob")

	require.NotNil(t, op.Body)
	assert.Empty(t, op.BodyExpanded)
	assert.Equal(t, "requestBody", op.Body.Name)
	assert.Equal(t, LocationBody, op.Body.In)
	assert.Equal(t, "[]byte", op.Body.Type)
	assert.Empty(t, op.Body.MediaType)
	assert.Equal(t, "application/octet-stream", op.BodyMediaType)
	assert.Equal(t, []string{"id", "requestBody"}, names(op.All))

	// 204 is not a result, so the operation returns nothing
	require.Len(t, op.Results, 1)
	assert.Equal(t, voidType, op.Results[0].Type)
}

func TestBodyKeptWholeWhenNotExplodable(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /inline:
    post:
      requestBody:
        content:
          application/json:
            schema:
              type: object
              properties:
                a:
                  type: string
      responses:
        "200":
          description: ok
  /scalar:
    post:
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Name'
      responses:
        "200":
          description: ok
  /patch:
    patch:
      requestBody:
        content:
          application/json-patch+json:
            schema:
              $ref: '#/components/schemas/Thing'
      responses:
        "200":
          description: ok
  /form:
    post:
      requestBody:
        content:
          application/x-www-form-urlencoded:
            schema:
              $ref: '#/components/schemas/Thing'
      responses:
        "200":
          description: ok
  /named:
    post:
      x-body-name: payload
      requestBody:
        x-body-name: payload
        content:
          text/plain:
            schema:
              type: string
      responses:
        "200":
          description: ok
components:
  schemas:
    Name:
      type: string
    Thing:
      type: object
      properties:
        x:
          type: string
`
	result := normalizeDoc(t, doc)

	tests := []struct {
		method, path string
		wantName     string
		wantIn       Location
		wantExport   Export
		wantType     string
	}{
		{method: "POST", path: "/inline", wantName: "requestBody", wantIn: LocationBody, wantExport: ExportInterface, wantType: anyType},
		{method: "POST", path: "/scalar", wantName: "requestBody", wantIn: LocationBody, wantExport: ExportReference, wantType: "Name"},
		{method: "PATCH", path: "/patch", wantName: "requestBody", wantIn: LocationBody, wantExport: ExportReference, wantType: "Thing"},
		{method: "POST", path: "/form", wantName: "formData", wantIn: LocationForm, wantExport: ExportReference, wantType: "Thing"},
		{method: "POST", path: "/named", wantName: "payload", wantIn: LocationBody, wantExport: ExportGeneric, wantType: "string"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			op := findOperation(t, result, tt.method, tt.path)
			require.NotNil(t, op.Body)
			assert.Empty(t, op.BodyExpanded)
			assert.Equal(t, tt.wantName, op.Body.Name)
			assert.Equal(t, tt.wantIn, op.Body.In)
			assert.Equal(t, tt.wantExport, op.Body.Export)
			assert.Equal(t, tt.wantType, op.Body.Type)
			assert.Contains(t, op.All, op.Body)
		})
	}
}

func TestOAS2BodyLastWins(t *testing.T) {
	doc := `swagger: "2.0"
info:
  title: t
  version: "1"
consumes:
  - application/json
paths:
  /items:
    post:
      parameters:
        - name: first
          in: body
          schema:
            $ref: '#/definitions/Item'
        - name: token
          in: header
          required: true
          type: string
        - name: second
          in: body
          required: true
          schema:
            $ref: '#/definitions/Item'
        - name: tags
          in: formData
          type: array
          items:
            type: string
      responses:
        200:
          description: ok
          schema:
            $ref: '#/definitions/Item'
definitions:
  Item:
    type: object
    properties:
      id:
        type: string
`
	op := findOperation(t, normalizeDoc(t, doc), "POST", "/items")

	require.NotNil(t, op.Body)
	assert.Equal(t, "second", op.Body.Prop)
	assert.Empty(t, op.BodyExpanded)
	assert.Equal(t, "application/json", op.BodyMediaType)
	assert.Equal(t, []string{"token", "second", "first", "tags"}, names(op.All))
	require.Len(t, op.Form, 1)
	assert.Equal(t, ExportArray, op.Form[0].Export)
	assert.Equal(t, "string", op.Form[0].Type)
	assert.Equal(t, []string{"Item"}, op.Imports)
}

func TestOAS2QueryExpansion(t *testing.T) {
	doc := `swagger: "2.0"
info:
  title: t
  version: "1"
paths:
  /items:
    get:
      parameters:
        - name: filter
          in: query
          schema:
            $ref: '#/definitions/Filter'
        - name: filter
          in: query
          schema:
            $ref: '#/definitions/Empty'
      responses:
        200:
          description: ok
definitions:
  Filter:
    type: object
    properties:
      status:
        type: string
  Empty:
    type: object
`
	op := findOperation(t, normalizeDoc(t, doc), "GET", "/items")
	// the second declaration has nothing to expand and is kept whole
	assert.Equal(t, []string{"status", "filter"}, names(op.Query))
	assert.Equal(t, ExportReference, op.Query[1].Export)
}

func TestBodyExclusivity(t *testing.T) {
	result := normalizeDoc(t, bodyDoc)
	for _, op := range result.Operations() {
		hasBody := op.Body != nil
		hasExpanded := len(op.BodyExpanded) > 0
		assert.NotEqual(t, hasBody, hasExpanded, "%s %s", op.Method, op.Path)
	}
}

func TestOrderingLaw(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /p/{a}:
    parameters:
      - name: a
        in: path
        required: true
        schema:
          type: string
    get:
      parameters:
        - name: b
          in: query
          schema:
            type: string
        - name: c
          in: header
          required: true
          schema:
            type: string
        - name: d
          in: cookie
          schema:
            type: string
        - name: e
          in: query
          required: true
          schema:
            type: string
      responses:
        "200":
          description: ok
`
	op := findOperation(t, normalizeDoc(t, doc), "GET", "/p/{a}")
	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, names(op.All))
	assert.Equal(t, []string{"d"}, names(op.Cookie))
}

func TestReferenceErrors(t *testing.T) {
	tests := []struct {
		name     string
		param    string
		circular bool
	}{
		{name: "missing parameter", param: "$ref: '#/components/parameters/Missing'"},
		{name: "external parameter", param: "$ref: 'common.yaml#/components/parameters/Limit'"},
		{name: "circular parameter", param: "$ref: '#/components/parameters/A'", circular: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /items:
    get:
      parameters:
        - ` + tt.param + `
      responses:
        "200":
          description: ok
components:
  parameters:
    A:
      $ref: '#/components/parameters/B'
    B:
      $ref: '#/components/parameters/A'
`
			result, err := New().Normalize(context.Background(), parseDoc(t, doc))
			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.Is(err, oaserrors.ErrReference))
			assert.Equal(t, tt.circular, errors.Is(err, oaserrors.ErrCircularReference))
			assert.Contains(t, err.Error(), "GET /items")
			assert.Contains(t, err.Error(), "paths./items.get.parameters[0]")
		})
	}
}

func TestMissingBodySchemaReference(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /items:
    post:
      requestBody:
        content:
          application/json:
            schema:
              $ref: '#/components/schemas/Missing'
      responses:
        "200":
          description: ok
`
	_, err := New().Normalize(context.Background(), parseDoc(t, doc))
	var refErr *oaserrors.ReferenceError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "#/components/schemas/Missing", refErr.Ref)
	assert.Equal(t, "local", refErr.RefType)
}

func TestServicesAndTags(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /pets:
    get:
      operationId: listPets
      tags: [pets, pet store, pets]
      responses:
        "200":
          description: ok
          content:
            application/json:
              schema:
                $ref: '#/components/schemas/Pet'
  /health:
    get:
      responses:
        "200":
          description: ok
components:
  schemas:
    Pet:
      type: object
`
	result := normalizeDoc(t, doc)

	got := make(map[string][]string)
	for _, svc := range result.Services {
		for _, op := range svc.Operations {
			got[svc.Name] = append(got[svc.Name], op.Name)
		}
	}
	want := map[string][]string{
		"Default":  {"getHealth"},
		"PetStore": {"listPets"},
		"Pets":     {"listPets"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("services mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, result.OperationCount)
	assert.Equal(t, "Default", result.Services[0].Name)
	assert.Equal(t, []string{"Pet"}, result.Services[2].Imports)
}

func TestGroupServicesSuffixesDuplicates(t *testing.T) {
	ops := []*Operation{
		{Service: "Items", Name: "getItem", Parameters: Parameters{Imports: []string{"Item"}}},
		{Service: "Items", Name: "getItem", Parameters: Parameters{Imports: []string{"Owner", "Item"}}},
		{Service: "Admin", Name: "getItem"},
		{Service: "Items", Name: "getItem"},
	}
	services := groupServices(ops)
	require.Len(t, services, 2)

	assert.Equal(t, "Admin", services[0].Name)
	assert.Equal(t, "getItem", services[0].Operations[0].Name)

	items := services[1]
	var got []string
	for _, op := range items.Operations {
		got = append(got, op.Name)
	}
	assert.Equal(t, []string{"getItem", "getItem1", "getItem2"}, got)
	assert.Equal(t, []string{"Item", "Owner"}, items.Imports)
}

func TestNormalizeValidation(t *testing.T) {
	doc := `openapi: 3.0.3
info:
  title: t
  version: "1"
paths:
  /items/{id}:
    get:
      parameters:
        - name: id
          in: path
          schema:
            type: string
      responses:
        "200":
          description: ok
`
	n := New()
	n.Validate = true
	_, err := n.Normalize(context.Background(), parseDoc(t, doc))
	assert.ErrorIs(t, err, oaserrors.ErrValidation)

	n.Validate = false
	result, err := n.Normalize(context.Background(), parseDoc(t, doc))
	require.NoError(t, err)
	assert.Equal(t, 1, result.OperationCount)
}

func TestNormalizeRejectsMissingDocument(t *testing.T) {
	_, err := New().Normalize(context.Background(), nil)
	assert.ErrorIs(t, err, oaserrors.ErrConfig)
}

func TestNormalizeHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Normalize(ctx, parseDoc(t, filterDoc))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWebhooksAndPathRefsWarn(t *testing.T) {
	doc := `openapi: 3.1.0
info:
  title: t
  version: "1"
paths:
  /shared:
    $ref: '#/components/pathItems/Shared'
webhooks:
  newPet:
    post:
      responses:
        "200":
          description: ok
components:
  pathItems:
    Shared:
      get:
        responses:
          "200":
            description: ok
`
	result := normalizeDoc(t, doc)
	assert.Zero(t, result.OperationCount)
	assert.Len(t, result.Warnings, 2)
}
