package main

import "gitlab.com/begraf/tourenblick/cmd"

func main() {
	cmd.Execute()
}
