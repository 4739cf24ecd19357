package main

import "shadowme_backend/internal/app"

func main() {
	app.Run()
}
