/*
Package observability provides tools for monitoring the trace driver.

Metrics are fed through the runner's lifecycle hooks and can be exported as a
Prometheus textfile, which suits a short-lived CLI better than a scrape endpoint.
*/
package observability
