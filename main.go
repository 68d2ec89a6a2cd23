package main

import "cotiza/cmd"

func main() {
	cmd.Execute()
}
