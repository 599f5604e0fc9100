package main

import "github.com/ilan-segal/raytracer/cmd"

func main() {
	cmd.Execute()
}
