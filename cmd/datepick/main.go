package main

import "github.com/arjungandhi/datepick"

func main() {
	datepick.Cmd.Run()
}
