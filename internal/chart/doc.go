// Package chart turns derived tables into ECharts option documents.
//
// Charts are assembled with github.com/go-echarts/go-echarts/v2 and exported
// as JSON (model.ChartSpec.Options). The browser renders them with the
// ECharts runtime; nothing is drawn on the server.
//
// Builders never modify their input and share no state, so BuildAll can run
// them concurrently.
package chart
