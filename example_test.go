package geoconv_test

import (
	"fmt"

	"github.com/nordgeo/geoconv"
)

func ExampleDMSFromCoord() {
	dms := geoconv.DMSFromCoord(geoconv.NewCoord(48.5863964, 36.5291404))
	fmt.Println(dms)
}

func ExampleDMSFromMGRS() {
	dms, _ := geoconv.DMSFromMGRS("16SGC3855124838")
	fmt.Println(dms)
}

func ExampleCoord_MGRS() {
	mgrs, _ := geoconv.NewCoord(0, 0).MGRS(5)
	fmt.Println(mgrs)
}

func ExampleCoordFromMGRS() {
	c, _ := geoconv.CoordFromMGRS("16SGC3855124838")
	fmt.Println(c)
}
