package main

import (
	"ghostradar/internal/app"
	"ghostradar/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
