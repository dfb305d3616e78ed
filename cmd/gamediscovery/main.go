package main

import "github.com/cleitonmarx/symbiont-game-discovery/internal/app"

func main() {
	err := app.NewGameDiscoveryApp().
		Introspect(&app.ReportLoggerIntrospector{}).
		Run()
	if err != nil {
		panic(err)
	}
}
