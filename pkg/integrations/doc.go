// Package integrations provides HTTP clients for package registry APIs.
//
// # Overview
//
// The [Client] type carries the HTTP plumbing shared by registry clients:
// default headers, status-code mapping to coded errors from
// [github.com/DimShadoWWW/npm2ebuild/pkg/errors], and request events for
// [github.com/DimShadoWWW/npm2ebuild/pkg/observability].
//
// Registry-specific clients live in subpackages:
//
//   - [npm]: the npm registry
//
// # Failure mapping
//
//   - 200: success, body decoded as JSON
//   - 404: PACKAGE_NOT_FOUND
//   - other statuses and transport failures: NETWORK_ERROR
//   - undecodable body: INVALID_FORMAT
//
// Requests are not retried and responses are not cached.
//
// [npm]: github.com/DimShadoWWW/npm2ebuild/pkg/integrations/npm
package integrations
