package main

import (
	"os"

	"github.com/FACorreiaa/paragourmet/cmd"
)

// @title        paragourmet API
// @version      1.0
// @description  Scene-aware food and drink suggestions from weather, location and nearby places.
// @BasePath     /
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
