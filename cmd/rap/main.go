// cmd/rap/main.go
package main

import (
	"rap/internal/app"
	"rap/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
