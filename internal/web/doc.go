// Package web serves the pattern catalogue over HTTP.
//
// The composite and decorator demos are browser forms in the original catalogue; here
// they are server-rendered pages that post back and show the result in the same element
// ids (#result, #drugDescription). The other patterns get small read-only endpoints.
//
// Routes:
//
//	GET  /                                  health text
//	GET  /composite                         roof calculator form
//	POST /composite/calculate               roof calculator result
//	GET  /decorator                         drug form
//	POST /decorator/apply                   decorated drug description
//	GET  /widgets/:family                   abstract factory widgets (HTML fragment)
//	GET  /api/v1/strategy/:op?a=&b=         strategy result (JSON)
//	GET  /api/v1/notifications/:platform    factory method output (text)
//	GET  /metrics                           Prometheus metrics
package web
