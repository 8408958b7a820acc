package main

import "country-pulse/cmd"

func main() {
	cmd.Execute()
}
