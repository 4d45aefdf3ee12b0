// Package main provides an example of building a week of sunrise/sunset times.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/devskill-org/sun-calendar/sun"
)

func main() {
	observer, err := sun.NewObserver(56.9496, 24.1052) // Riga
	if err != nil {
		log.Fatal(err)
	}

	loc, err := time.LoadLocation("Europe/Riga")
	if err != nil {
		log.Fatal(err)
	}

	builder := sun.NewBuilder(sun.NewSunCalcOracle(), observer, loc, nil)

	today := sun.DateKeyOf(time.Now().In(loc))
	table, err := builder.Build(today, today.AddDays(6))
	if err != nil {
		log.Fatal(err)
	}

	for _, d := range table.Keys() {
		st, _ := table.Get(d)
		fmt.Printf("%s  Sunrise: %s  Sunset: %s\n", d, st.Sunrise.Format("15:04"), st.Sunset.Format("15:04"))
	}
}
