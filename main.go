package main

import "assetseed/cmd"

func main() {
	cmd.Execute()
}
