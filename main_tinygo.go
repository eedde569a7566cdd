//go:build tinygo

package main

import (
	"mvm/app"
	"mvm/hal"
)

func main() {
	app.Run(hal.New())
}
