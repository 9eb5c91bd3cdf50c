//go:build js

package ui

import (
	"log"
	"net/url"
	"strings"
	"syscall/js"
)

var (
	window      = js.Global().Get("window")
	location    = js.Global().Get("location")
	history     = js.Global().Get("history")
	initialized = false
	params      url.Values
)

func init() {
	u, _ := url.Parse(location.Get("href").String())
	params = u.Query()
}

func BaseURL() string {
	return location.Get("origin").String() + location.Get("pathname").String()
}

func URLOpen(u string) {
	window.Call("open", u)
}

// QueryParams returns the query values the page was opened with.
func QueryParams() url.Values {
	return params
}

// SyncQuery replaces the page query without reloading, so that reloading or
// bookmarking the page restores the current values.
func SyncQuery(values url.Values) {
	params = values
	target := "?" + values.Encode() + location.Get("hash").String()
	history.Call("replaceState", js.Null(), "", target)
}

func getViewFromHash() ViewName {
	return ViewName(strings.TrimPrefix(location.Get("hash").String(), "#"))
}

func initialView(options Options) ViewName {
	if view := getViewFromHash(); view != "" {
		return view
	}
	return options.InitialView
}

func initRouter(app *applicationComponent) {
	initialized = true

	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		view := getViewFromHash()
		if view == app.ActiveView() || sceneData == nil {
			return nil
		}
		switch view {
		case ViewNameHome, ViewNameBasic, ViewNameInteractive, ViewNameLicenses:
			log.Println("view changed", view)
			app.SetActiveView(view)
		}
		return nil
	})
	window.Call("addEventListener", "hashchange", cb)
}

func updateHash(view ViewName) {
	if !initialized {
		return
	}
	switch view {
	default:
		return
	case ViewNameHome, ViewNameBasic, ViewNameInteractive, ViewNameLicenses:
	}
	targetHash := "#" + string(view)
	if location.Get("hash").String() != targetHash {
		log.Println("update hash", view)
		location.Set("hash", targetHash)
	}
}
