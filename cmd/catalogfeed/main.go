// Command catalogfeed writes a sample gzipped JSON-lines product feed that
// the API can seed its catalogue from.
package main

import (
	"compress/gzip"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"shop-orders/internal/model"

	"github.com/shopspring/decimal"
)

func main() {
	out := flag.String("out", "data/catalog/products.jsonl.gz", "path of the feed to write")
	flag.Parse()

	if err := os.MkdirAll(filepath.Dir(*out), 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := sampleProducts()
	if err := writeFeed(*out, products); err != nil {
		log.Fatalf("Failed to create %s: %v", *out, err)
	}

	fmt.Printf("Created %s with %d products\n", *out, len(products))
}

func sampleProducts() []model.Product {
	return []model.Product{
		{Name: "Brake Pad Set", VIN: "BP-1001", Category: "Brakes", Price: decimal.RequireFromString("45.90"), Model: "Sedan X", InStock: true, Image: "/img/brake-pad.jpg", Description: "Front axle ceramic pads"},
		{Name: "Brake Disc", VIN: "BD-2040", Category: "Brakes", Price: decimal.RequireFromString("89.00"), Model: "Sedan X", InStock: true, Image: "/img/brake-disc.jpg"},
		{Name: "Oil Filter", VIN: "OF-3100", Category: "Engine", Price: decimal.RequireFromString("12.50"), Model: "Hatch S", InStock: true, Image: "/img/oil-filter.jpg"},
		{Name: "Air Filter", VIN: "AF-3120", Category: "Engine", Price: decimal.RequireFromString("18.75"), Model: "Hatch S", InStock: false, Image: "/img/air-filter.jpg"},
		{Name: "Spark Plug", VIN: "SP-4000", Category: "Ignition", Price: decimal.RequireFromString("7.20"), Model: "Sedan X", InStock: true, Image: "/img/spark-plug.jpg", Description: "Iridium tip"},
		{Name: "Headlight Bulb", VIN: "HB-5005", Category: "Electrics", Price: decimal.RequireFromString("15.00"), Model: "SUV T", InStock: true, Image: "/img/bulb.jpg"},
	}
}

func writeFeed(path string, products []model.Product) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product %s: %w", p.VIN, err)
		}
	}

	return nil
}
