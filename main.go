package main

import "github.com/y7ut/empgrid/cmd"

func main() {
	cmd.Execute()
}
