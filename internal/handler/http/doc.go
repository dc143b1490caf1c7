// Package http implements the browser console.
//
// It renders the frontends page as server-side HTML and turns every form
// post into one call on the shared [console.Page], then redirects back to
// the page (post/redirect/get). Request tracing, access logging and response
// compression are handled by middleware in this package.
package http
