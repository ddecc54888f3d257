// Package integrations provides the HTTP plumbing for package index clients.
//
// # Overview
//
// The [Client] type is shared by every index client (see [maven]). It adds
// default headers, applies a fixed timeout, decodes JSON or XML bodies and
// maps HTTP failures onto two sentinel errors:
//
//   - [ErrNotFound]: the index answered 404
//   - [ErrNetwork]: transport failures and any other non-200 status
//
// Callers wrap these with %w so errors.Is keeps working:
//
//	if errors.Is(err, integrations.ErrNotFound) {
//	    // library is not published in this repository
//	}
//
// # Hooks
//
// Each request is reported to [observability.HTTP], which is a no-op unless
// the application registers its own hooks.
//
// [maven]: github.com/matzehuels/depcheck/pkg/integrations/maven
// [observability.HTTP]: github.com/matzehuels/depcheck/pkg/observability.HTTP
package integrations
