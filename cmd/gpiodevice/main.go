package main

import "github.com/BertoldVdb/gpiodevice/cmd/gpiodevice/cmd"

func main() {
	cmd.Execute()
}
