package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParameterName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "id", want: "id"},
		{raw: "api-version", want: "apiVersion"},
		{raw: "X-Request-ID", want: "xRequestID"},
		{raw: "filter[status]", want: "filterStatus"},
		{raw: "ids[]", want: "idsArray"},
		{raw: "_id", want: "id"},
		{raw: "$top", want: "top"},
		{raw: "page.size", want: "pageSize"},
		{raw: "type", want: "type_"},
		{raw: "Range", want: "range_"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parameterName(tt.raw))
		})
	}
}

func TestServiceName(t *testing.T) {
	tests := []struct {
		tag  string
		want string
	}{
		{tag: "pets", want: "Pets"},
		{tag: "pet store", want: "PetStore"},
		{tag: "user-accounts", want: "UserAccounts"},
		{tag: "APIKeys", want: "APIKeys"},
		{tag: "2fa", want: "Fa"},
		{tag: "", want: DefaultServiceName},
		{tag: "---", want: DefaultServiceName},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, serviceName(tt.tag))
		})
	}
}

func TestOperationName(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		method      string
		operationID string
		want        string
	}{
		{name: "operationId wins", path: "/pets", method: "get", operationID: "listPets", want: "listPets"},
		{name: "operationId is cleaned", path: "/pets", method: "get", operationID: "Pets_List", want: "petsList"},
		{name: "operationId keyword", path: "/pets", method: "get", operationID: "import", want: "import_"},
		{name: "derived from path", path: "/pets", method: "get", want: "getPets"},
		{name: "path parameter", path: "/pets/{petId}", method: "delete", want: "deletePetsByPetId"},
		{name: "version segment dropped", path: "/v{api-version}/pets", method: "post", want: "postPets"},
		{name: "empty operationId after cleaning", path: "/pets", method: "put", operationID: "__", want: "putPets"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, operationName(tt.path, tt.method, tt.operationID, DefaultVersionMarker))
		})
	}
}

func TestRefTypeName(t *testing.T) {
	assert.Equal(t, "Pet", refTypeName("#/components/schemas/Pet"))
	assert.Equal(t, "PetOwner", refTypeName("#/definitions/pet_owner"))
	assert.Equal(t, "Type_", refTypeName("#/definitions/type"))
	assert.Equal(t, anyType, refTypeName("#/definitions/"))
}
