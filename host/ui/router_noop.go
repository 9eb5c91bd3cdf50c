//go:build !js

package ui

import (
	"fmt"
	"log"
	"net/url"
	"os/exec"
	"runtime"
)

func BaseURL() string {
	return "https://nobonobo.github.io/mesh-scene/"
}

func URLOpen(u string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", u)
	case "darwin":
		cmd = exec.Command("open", u)
	case "linux":
		cmd = exec.Command("xdg-open", u)
	default:
		log.Println(fmt.Errorf("unsupported OS: %s", runtime.GOOS))
		return
	}
	if err := cmd.Start(); err != nil {
		log.Printf("ERROR: failed to open %s: %v", u, err)
	}
}

func QueryParams() url.Values {
	return url.Values{}
}

func SyncQuery(values url.Values) {
}

func initialView(options Options) ViewName {
	return options.InitialView
}

func initRouter(app *applicationComponent) {
}

func updateHash(view ViewName) {
}
