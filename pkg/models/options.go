package models

import (
	"maps"
	"reflect"
	"slices"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

const (
	WidthsOption                    = "widths"
	MinHeightOption                 = "minHeight"
	EnableJavaScriptOption          = "enableJavaScript"
	PercyCSSOption                  = "percyCSS"
	ScopeOption                     = "scope"
	SyncOption                      = "sync"
	ResponsiveSnapshotCaptureOption = "responsiveSnapshotCapture"

	IgnoreRegionElementsOption   = "ignoreRegionSeleniumElements"
	ConsiderRegionElementsOption = "considerRegionSeleniumElements"
)

// legacy option spellings still accepted from callers, mapped to canonical keys
var (
	snapshotOptionAliases = map[string]string{
		"responsive_snapshot_capture": ResponsiveSnapshotCaptureOption,
		"enable_javascript":           EnableJavaScriptOption,
		"min_height":                  MinHeightOption,
		"percy_css":                   PercyCSSOption,
	}

	screenshotOptionAliases = map[string]string{
		"ignore_region_selenium_elements":   IgnoreRegionElementsOption,
		"consider_region_selenium_elements": ConsiderRegionElementsOption,
	}
)

// SnapshotOptions configures a DOM snapshot. Zero values are not sent to the server.
type SnapshotOptions struct {
	Widths                    []int  `mapstructure:"widths"`
	MinHeight                 int    `mapstructure:"minHeight"`
	EnableJavaScript          *bool  `mapstructure:"enableJavaScript"`
	PercyCSS                  string `mapstructure:"percyCSS"`
	Scope                     string `mapstructure:"scope"`
	Sync                      *bool  `mapstructure:"sync"`
	ResponsiveSnapshotCapture *bool  `mapstructure:"responsiveSnapshotCapture"`
	// Extra holds options unknown to the SDK, they are passed to the server as is
	Extra map[string]interface{} `mapstructure:",remain"`
}

// ParseSnapshotOptions decodes map style options, as accepted by the other Percy SDKs
func ParseSnapshotOptions(raw map[string]interface{}) (*SnapshotOptions, error) {
	opts := new(SnapshotOptions)
	if len(raw) == 0 {
		return opts, nil
	}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           opts,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Decode(renameKeys(raw, snapshotOptionAliases)); err != nil {
		return nil, errors.Wrap(err, "failed to decode snapshot options")
	}
	return opts, nil
}

func (o *SnapshotOptions) IsSync() bool {
	return o != nil && o.Sync != nil && *o.Sync
}

// ToMap renders options in their wire representation
func (o *SnapshotOptions) ToMap() map[string]interface{} {
	res := make(map[string]interface{})
	if o == nil {
		return res
	}
	maps.Copy(res, o.Extra)
	if len(o.Widths) > 0 {
		res[WidthsOption] = slices.Clone(o.Widths)
	}
	if o.MinHeight > 0 {
		res[MinHeightOption] = o.MinHeight
	}
	if o.EnableJavaScript != nil {
		res[EnableJavaScriptOption] = *o.EnableJavaScript
	}
	if o.PercyCSS != "" {
		res[PercyCSSOption] = o.PercyCSS
	}
	if o.Scope != "" {
		res[ScopeOption] = o.Scope
	}
	if o.Sync != nil {
		res[SyncOption] = *o.Sync
	}
	if o.ResponsiveSnapshotCapture != nil {
		res[ResponsiveSnapshotCaptureOption] = *o.ResponsiveSnapshotCapture
	}
	return res
}

// ScreenshotOptions configures an automate screenshot.
// Region element lists accept webdriver elements, element references or element ids.
type ScreenshotOptions struct {
	IgnoreRegionSeleniumElements   []interface{}
	ConsiderRegionSeleniumElements []interface{}
	Sync                           *bool
	Extra                          map[string]interface{}
}

func (o *ScreenshotOptions) IsSync() bool {
	return o != nil && o.Sync != nil && *o.Sync
}

// ToMap renders options with region element lists under their canonical keys.
// Elements given in the struct fields come first, followed by the ones found in Extra.
func (o *ScreenshotOptions) ToMap() map[string]interface{} {
	res := make(map[string]interface{})
	if o == nil {
		return res
	}
	maps.Copy(res, o.Extra)
	res = NormalizeRegionKeys(res)
	if len(o.IgnoreRegionSeleniumElements) > 0 {
		res[IgnoreRegionElementsOption] = concatLists(o.IgnoreRegionSeleniumElements, res[IgnoreRegionElementsOption])
	}
	if len(o.ConsiderRegionSeleniumElements) > 0 {
		res[ConsiderRegionElementsOption] = concatLists(o.ConsiderRegionSeleniumElements, res[ConsiderRegionElementsOption])
	}
	if o.Sync != nil {
		res[SyncOption] = *o.Sync
	}
	return res
}

// NormalizeRegionKeys moves legacy region element keys to their canonical spelling.
// A legacy key replaces the canonical one when both are given.
func NormalizeRegionKeys(opts map[string]interface{}) map[string]interface{} {
	for legacy, canonical := range screenshotOptionAliases {
		if v, ok := opts[legacy]; ok {
			delete(opts, legacy)
			opts[canonical] = toList(v)
			continue
		}
		if v, ok := opts[canonical]; ok {
			opts[canonical] = toList(v)
		}
	}
	return opts
}

func renameKeys(raw map[string]interface{}, aliases map[string]string) map[string]interface{} {
	res := make(map[string]interface{}, len(raw))
	for k, v := range raw {
		if canonical, ok := aliases[k]; ok {
			if _, exists := raw[canonical]; exists {
				continue
			}
			k = canonical
		}
		res[k] = v
	}
	return res
}

func concatLists(a, b interface{}) []interface{} {
	return append(slices.Clone(toList(a)), toList(b)...)
}

func toList(v interface{}) []interface{} {
	switch l := v.(type) {
	case nil:
		return nil
	case []interface{}:
		return l
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return []interface{}{v}
		}
		res := make([]interface{}, rv.Len())
		for i := range res {
			res[i] = rv.Index(i).Interface()
		}
		return res
	}
}
