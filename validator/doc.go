// Package validator checks OpenAPI documents against the OpenAPI
// Specification before they are normalized.
//
// Validation is delegated to kin-openapi. OAS 3.x documents are loaded with
// an [openapi3.Loader] and validated directly. OAS 2.0 documents are decoded
// into an openapi2 document, converted to 3.0 with openapi2conv and then
// validated, so both dialects report problems in the same form.
//
// External references are never fetched; a document that depends on them
// fails validation.
//
// # Usage
//
//	parsed, err := parser.ParseWithOptions(parser.WithFilePath("petstore.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, err := validator.New().ValidateParsed(ctx, parsed)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if !result.Valid {
//		for _, e := range result.Errors {
//			fmt.Println(e)
//		}
//	}
//
// Every entry in ValidationResult.Errors is an *oaserrors.ValidationError,
// so callers can match it with errors.Is(err, oaserrors.ErrValidation).
package validator
