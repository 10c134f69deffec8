// cmd/igreport/main.go
package main

import (
	"igreport/internal/app"
	"igreport/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
