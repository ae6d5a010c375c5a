// Package parser decodes OpenAPI Specification documents into typed models.
//
// Both dialects are supported: OAS 2.0 (Swagger), where a request body is an
// ordinary parameter located "in: body", and OAS 3.x, where the request body
// is a separate requestBody object. YAML and JSON inputs are accepted.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if doc, ok := result.OAS3Document(); ok {
//		fmt.Println(doc.Info.Title)
//	}
//
// # References
//
// The parser does not resolve $ref pointers. References stay in the typed
// model exactly as written and are resolved lazily by consumers such as the
// normalizer package, which reports a missing target as an
// [oaserrors.ReferenceError].
//
// # Property Order
//
// Go maps do not keep insertion order, so [Schema] records the order in which
// its properties were declared in the source document. Use
// [Schema.PropertyNames] to iterate properties deterministically.
package parser
