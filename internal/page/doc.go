// Package page composes the dashboard layout and renders it as HTML.
//
// Compose builds a model.Page from the four charts and static text; Render
// writes the page as a complete HTML5 document using golang.org/x/net/html
// nodes, with one <div> and one inline script per chart.
package page
