package main

import "srcfeed/cmd"

func main() {
	cmd.Execute()
}
