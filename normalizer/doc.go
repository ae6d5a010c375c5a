// Package normalizer turns parsed OpenAPI 2.0 and 3.x documents into
// per-operation parameter models that a client code emitter can bind to
// call signatures.
//
// Every operation becomes an [Operation] record carrying its parameters in
// location buckets ([Parameters]): path, query, formData, cookie, header and
// the request body. Both dialects end up in the same shape:
//
//   - OAS 2.0 "body" declarations fill the body slot; when several are
//     declared the last one wins. Declarations are not deduplicated.
//   - OAS 3.x declarations are admitted once per sanitized name, first
//     occurrence winning, with path-level names taking precedence over
//     operation-level ones. The requestBody is read from its content.
//
// Object-shaped inputs are exploded into one parameter per property: query
// and formData declarations whose schema references an object, and OAS 3.x
// application/json request bodies whose schema references an object. An
// exploded body lands in BodyExpanded and leaves Body nil. A schema with no
// properties falls back to the single declaration.
//
// The parameter named by the version marker (DefaultVersionMarker unless
// configured) is never emitted. The final parameter list is sorted with
// required parameters first, keeping declaration order otherwise.
//
// # Usage
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//		normalizer.WithFilePath("petstore.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, svc := range result.Services {
//		for _, op := range svc.Operations {
//			fmt.Println(svc.Name, op.Name, len(op.All))
//		}
//	}
//
// A reusable [Normalizer] holds configuration only; each call to
// Normalize builds its own resolver state, so one instance can serve many
// goroutines.
//
// # Errors
//
// References that cannot be resolved, including external and circular
// ones, abort the affected operation with an *oaserrors.ReferenceError
// wrapped with the method and path. Dropped duplicates and expansion
// fallbacks are not errors; they are logged at debug level.
package normalizer
