package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Select  bool
	Extract bool
	Diff    bool
	Filter  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Select = boolEnv("DOCLIFT_DEBUG_SELECT")
	d.Extract = boolEnv("DOCLIFT_DEBUG_EXTRACT")
	d.Diff = boolEnv("DOCLIFT_DEBUG_DIFF")
	d.Filter = boolEnv("DOCLIFT_DEBUG_FILTER")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Select() bool {
	return d.Select
}
func Extract() bool {
	return d.Extract
}
func Diff() bool {
	return d.Diff
}
func Filter() bool {
	return d.Filter
}
