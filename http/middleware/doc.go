/*
The middleware package defines what a middleware is in folio and a set of basic middlewares.

The available middlewares are:
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectUserLang
- LogRequest
- Metrics
- RateLimit
- ReportPanic
- RequestID

Package router wraps every handler in ReportPanic.
A folio server chains the rest in this order:

	vs := middleware.NewVisitors(rate.Limit(5), 20)
	adpts := []middleware.Adapter{
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.Metrics(collector),
		middleware.RateLimit(vs, collector),
		middleware.CORS(origin),
		middleware.InjectUserLang(),
	}
*/
package middleware
