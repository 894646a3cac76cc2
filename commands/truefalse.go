package commands

// True exits 0.
func True(*Process) int {
	return 0
}

// False exits 1.
func False(*Process) int {
	return 1
}

func init() {
	mustAddCmd("true", True)
	mustAddCmd("false", False)
}
