package main

import "github.com/gsonntag/bruinbite/cmd"

func main() {
	cmd.Execute()
}
