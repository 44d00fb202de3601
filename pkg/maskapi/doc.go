// Package maskapi exposes the field registry and the raw pattern engine over
// HTTP.
//
//	GET  /health
//	GET  /masks                 names of registered fields and IE regions
//	POST /masks/{name}          {"value": "...", "selector": "SP"}
//	POST /patterns/apply        {"pattern": "000-000", "reverse": false, "value": "..."}
//
// Responses use a {"data": ..., "error": {...}} envelope. Requests must be
// application/json with no unknown fields.
package maskapi
