package geojson_test

import (
	"fmt"
	"log"

	"github.com/robert-malhotra/reach-tile-matcher/pkg/geojson"
)

func ExampleNewPoint() {
	g, err := geojson.NewPoint(-91.1871, 30.4515)
	if err != nil {
		log.Fatal(err)
	}

	point, err := g.Point()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Longitude: %f, Latitude: %f\n", point[0], point[1])
	// Output: Longitude: -91.187100, Latitude: 30.451500
}

func ExampleToWKT() {
	g, err := geojson.NewPointFromPair([]float64{-91.1871, 30.4515})
	if err != nil {
		log.Fatal(err)
	}

	wkt, err := geojson.ToWKT(g)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(wkt)
	// Output: POINT(-91.1871 30.4515)
}
