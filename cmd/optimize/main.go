package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/client"
	"github.com/pricelab/pricelab/client/local"
	"github.com/pricelab/pricelab/client/web"
	labmath "github.com/pricelab/pricelab/internal/math"
	"github.com/pricelab/pricelab/internal/optimize"
)

func main() {

	var (
		file      = flag.String("file", "", "csv file with a price,rating pair per row")
		product   = flag.String("product", "", "product to search on the marketplace")
		baseURL   = flag.String("url", "", "marketplace base url")
		cost      = flag.Float64("cost", 0, "unit cost, defaults to 70% of the cheapest observation")
		maxDemand = flag.Float64("max-demand", 0, "theoretical max demand at price zero")
	)
	flag.Parse()

	samples, err := load(*file, *product, *baseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load samples")
	}
	if len(samples) == 0 {
		log.Fatal().Msg("no data available for optimization")
	}

	result, err := optimize.Run(samples.Prices(), samples.Ratings(), *cost, *maxDemand)
	if err != nil {
		log.Fatal().Err(err).Msg("optimization failed")
	}

	fmt.Println("OPTIMIZATION RESULTS")
	fmt.Println("===================")
	fmt.Println(fmt.Sprintf("Optimum Price: %s", labmath.Format(result.OptimumPrice)))
	fmt.Println(fmt.Sprintf("Maximum Profit: %s", labmath.Format(result.MaximumProfit)))
	fmt.Println(fmt.Sprintf("Estimated Demand: %s units", labmath.Format(result.EstimatedDemand)))
	fmt.Println(fmt.Sprintf("Total Iterations: %d", result.Iterations))
}

func load(file, product, baseURL string) (client.Samples, error) {
	switch {
	case file != "":
		return local.FromCSV(file)
	case product != "" && baseURL != "":
		return web.New(baseURL, 30*time.Second, 3*time.Second, 25).Samples(context.Background(), product)
	default:
		return nil, fmt.Errorf("either -file or -product with -url is required")
	}
}
