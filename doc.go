// Package oasnormalize turns the operations of an OpenAPI document into the
// canonical parameter records a client generator consumes.
//
// The library handles OAS 2.0 (Swagger) and OAS 3.x documents. The two
// dialects describe request bodies differently, so each has its own
// aggregation rules, but both produce the same record shape.
//
// # Packages
//
//   - parser: decode OAS 2.0 and 3.x documents from files, readers or bytes
//   - normalizer: build per-operation parameter buckets, explode JSON bodies
//     and group operations into services
//   - validator: validate documents with kin-openapi before normalizing
//   - oaserrors: typed errors shared by all packages
//
// # Quick Start
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//		normalizer.WithFilePath("openapi.yaml"),
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
// # Command Line
//
// The oasnormalize command wraps the library:
//
//	oasnormalize normalize openapi.yaml
//	oasnormalize normalize --format yaml --output ops.yaml swagger.json
//	oasnormalize validate openapi.yaml
//	oasnormalize mcp
//
// The mcp command serves the normalize and validate tools over the Model
// Context Protocol.
package oasnormalize
