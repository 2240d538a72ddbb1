package main

import (
	"os"

	"transgate/cmd"
)

// @title        transgate API
// @version      1.0
// @description  OpenAI chat completions 兼容的翻译网关
// @BasePath     /
func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
