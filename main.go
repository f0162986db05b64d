package main

import "github.com/KostasZigo/gitcat/cmd"

func main() {
	cmd.Execute()
}
