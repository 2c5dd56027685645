package main

import "github.com/inovacc/gitmsg/cmd"

func main() {
	cmd.Execute()
}
