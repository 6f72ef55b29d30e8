package main

import "bay-sanitation/cmd"

func main() {
	cmd.Execute()
}
