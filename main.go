package main

import "github.com/chemetools/gocolumn/cmd"

func main() {
	cmd.Execute()
}
