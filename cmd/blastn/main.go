// cmd/blastn/main.go
package main

import (
	"blastn/internal/app"
	"blastn/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
