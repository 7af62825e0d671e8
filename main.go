package main

import "siteplan/cmd"

func main() {
	cmd.Execute()
}
