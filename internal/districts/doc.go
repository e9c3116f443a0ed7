// Package districts retrieves the districts (시/군/구) of a province from the
// SK Open API travel metadata endpoint.
//
// HTTPClient is the strict client: it issues JSON GET requests with the app
// key header, pages through offset/limit, requires a "00" status and keeps
// only the records whose districtCode starts with the requested province
// code. Non-2xx statuses, transport failures and malformed bodies are
// returned as errors.
//
// Source wraps a client for the interactive navigator. It never fails: errors
// are logged as warnings and surface as an empty district list, so the user
// is simply asked again.
package districts
