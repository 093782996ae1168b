package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

func main() {
	fmt.Println("Fishing Advisory API Client Example")
	fmt.Println("===================================")

	// Base URL for the API
	baseURL := "http://localhost:8080"

	// Load the advisory for the default spot
	fmt.Println("\nLoading advisory for the default spot...")
	bundle := getJSON(fmt.Sprintf("%s/api/advisory/load", baseURL))

	prettyPrint("Advisory", bundle)

	// Pick the second forecast day if available and switch to it
	days, _ := bundle["nextDays"].([]interface{})
	if len(days) > 1 {
		day := days[1].(map[string]interface{})
		dateKey := day["dateKey"].(string)
		fmt.Printf("\nSwitching to %s (%s)...\n", day["day"], dateKey)

		dayBundle := getJSON(fmt.Sprintf("%s/api/advisory/day?date=%s", baseURL, dateKey))
		prettyPrint("Day advisory", dayBundle)
	}

	// Inspect the first best hour
	hours, _ := bundle["bestHours"].([]interface{})
	if len(hours) > 0 {
		hour := hours[0].(map[string]interface{})["hour"].(string)
		fmt.Printf("\nFetching detail for hour %s...\n", hour)

		detail := getJSON(fmt.Sprintf("%s/api/advisory/hour?hour=%s", baseURL, hour))
		prettyPrint("Hour detail", detail)
	}
}

func getJSON(url string) map[string]interface{} {
	resp, err := http.Get(url)
	if err != nil {
		fmt.Printf("Error fetching %s: %v\n", url, err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var data map[string]interface{}
	json.Unmarshal(body, &data)

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request failed (status %d): %v\n", resp.StatusCode, data["error"])
		os.Exit(1)
	}
	return data
}

func prettyPrint(title string, v interface{}) {
	pretty, _ := json.MarshalIndent(v, "", "  ")
	fmt.Printf("%s:\n%s\n", title, string(pretty))
}
