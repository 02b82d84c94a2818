package main

import "ecolearn_backend/internal/app"

func main() {
	app.Run()
}
