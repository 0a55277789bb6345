package main

import "github.com/restunugroho/demand-forecast/cmd"

func main() {
	cmd.Execute()
}
