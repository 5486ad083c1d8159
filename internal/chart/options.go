package chart

import (
	"encoding/json"
	"fmt"
)

// echartsChart is the part of the go-echarts chart API used for export.
type echartsChart interface {
	Validate()
	JSON() map[string]interface{}
}

// document is a decoded ECharts option document.
type document map[string]any

// export validates c and converts its options into a document.
func export(c echartsChart) (document, error) {
	c.Validate()

	data, err := json.Marshal(c.JSON())
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart options: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode chart options: %w", err)
	}
	return doc, nil
}

// encode serializes a document for model.ChartSpec.Options.
func (d document) encode() (json.RawMessage, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart options: %w", err)
	}
	return json.RawMessage(data), nil
}

// styleTitle applies the title font to every title component of d.
func (d document) styleTitle(family string, size int) {
	apply := func(v any) {
		title, ok := v.(map[string]any)
		if !ok {
			return
		}
		textStyle, ok := title["textStyle"].(map[string]any)
		if !ok {
			textStyle = map[string]any{}
		}
		textStyle["fontFamily"] = family
		textStyle["fontSize"] = size
		title["textStyle"] = textStyle
	}

	switch t := d["title"].(type) {
	case map[string]any:
		apply(t)
	case []any:
		for _, item := range t {
			apply(item)
		}
	}
}
