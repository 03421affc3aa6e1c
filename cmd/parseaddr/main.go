package main

import (
	"flag"
	"fmt"
	"log"

	"addressvalidator/pkg/api/address"
	"addressvalidator/pkg/parser"
)

func main() {
	// Define command line flags
	var blob string
	var field string
	var table bool
	flag.StringVar(&blob, "address", "", "Address blob to classify")
	flag.StringVar(&field, "field", "", "Print only the named component, e.g. \"Postal Code\"")
	flag.BoolVar(&table, "table", false, "Print every component, including absent ones")
	flag.Parse()

	if blob == "" {
		log.Fatal("Please provide an address using the -address flag")
	}

	p, err := parser.New()
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}

	parsed, validity := p.Parse(blob)

	if field != "" {
		c := address.ParseComponent(field)
		if c == address.ComponentNone {
			log.Fatalf("Unknown component %q", field)
		}
		text, _ := parsed.Get(c)
		fmt.Println(text)
		return
	}

	fmt.Printf("Classification: %s\n", validity)

	if table {
		names := address.ColumnNames()
		cells := parsed.Columns()
		for i := range names {
			fmt.Printf("%-31s%s\n", names[i], cells[i])
		}
	} else {
		for _, c := range parsed.Components() {
			text, _ := parsed.Get(c)
			fmt.Printf("%s: %s\n", c, text)
		}
	}

	if missing := parsed.MissingRequired(); len(missing) > 0 {
		fmt.Println("\nMissing required fields:")
		for _, c := range missing {
			fmt.Printf("  %s\n", c)
		}
	}

	if parsed.Len() > 0 {
		fmt.Printf("\nCanonical: %s\n", parsed)
	}
}
