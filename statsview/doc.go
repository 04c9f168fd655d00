// Package statsview is an optional package that will be built only
// when the +statsview build constraint is present.
//
// It provides a HTTP server running locally offering runtime
// statistics. Underlying functionality provided by
// "github.com/go-echarts/statsview".
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12051/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12051/debug/pprof/
package statsview
