package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
)

var stdin = bufio.NewReader(os.Stdin)

func main() {
	baseURL := flag.String("url", "http://localhost:8081", "base URL of the restaurant server")
	flag.Parse()

	client := &http.Client{}

	fmt.Println("==================== Restaurant Management Client ====================")
	fmt.Println("Interact with the restaurant server: view menus and tables, place and")
	fmt.Println("remove orders, or run a parallel simulation across many tables.")
	fmt.Println("======================================================================")

	for {
		printOptions()

		switch readLine() {
		case "1":
			get(client, *baseURL+"/menus", "Menus")
		case "2":
			get(client, *baseURL+"/tables", "Tables")
		case "3":
			tableID, itemID := readTableAndItem()
			do(client, "POST", fmt.Sprintf("%s/tables/%d/items/%d", *baseURL, tableID, itemID))
		case "4":
			tableID, itemID := readTableAndItem()
			do(client, "DELETE", fmt.Sprintf("%s/tables/%d/items/%d", *baseURL, tableID, itemID))
		case "5":
			tableID := readID("table ID")
			get(client, fmt.Sprintf("%s/tables/%d/items", *baseURL, tableID), fmt.Sprintf("Order for table %d", tableID))
		case "6":
			tableID, itemID := readTableAndItem()
			get(client, fmt.Sprintf("%s/tables/%d/items/%d", *baseURL, tableID, itemID), "Item")
		case "7":
			runSimulation(client, *baseURL)
		case "8":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid option. Please try again.")
		}
	}
}

func printOptions() {
	fmt.Println("\nPlease select an operation:")
	fmt.Println(" 1. List available menus")
	fmt.Println(" 2. List active tables")
	fmt.Println(" 3. Add a menu item to a table")
	fmt.Println(" 4. Remove a menu item from a table")
	fmt.Println(" 5. List all items ordered for a table")
	fmt.Println(" 6. Get a specific item ordered for a table")
	fmt.Println(" 7. Run simulation (parallel add/remove across tables)")
	fmt.Println(" 8. Exit")
}

func readLine() string {
	line, err := stdin.ReadString('\n')
	if err != nil {
		log.Fatal("Failed to read input:", err)
	}
	return strings.TrimSpace(line)
}

func readID(name string) uint32 {
	for {
		fmt.Printf("Enter %s: ", name)
		id, err := strconv.ParseUint(readLine(), 10, 32)
		if err == nil {
			return uint32(id)
		}
		fmt.Printf("Invalid %s, must be an unsigned integer.\n", name)
	}
}

func readTableAndItem() (uint32, uint32) {
	return readID("table ID"), readID("menu item ID")
}

func get(client *http.Client, url, label string) {
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("Request failed:", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s: %s\n", label, strings.TrimSpace(string(body)))
}

func do(client *http.Client, method, url string) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		fmt.Println("Request failed:", err)
		return
	}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Println("Request failed:", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println(strings.TrimSpace(string(body)))
}

// runSimulation adds and removes menu items across tables in parallel, then
// prints each table's final order. Only items that were added get removed, so
// every table ends up with a predictable remainder.
func runSimulation(client *http.Client, baseURL string) {
	fmt.Print("Enter the number of tables for the simulation (max 100, default 10): ")
	numTables, err := strconv.Atoi(readLine())
	if err != nil || numTables <= 0 {
		numTables = 10
	}
	if numTables > 100 {
		fmt.Println("Error: the maximum number of tables allowed for simulation is 100.")
		return
	}

	fmt.Printf("\nSimulating %d tables: each table gets several random items added in\n", numTables)
	fmt.Println("parallel, then a random subset removed in parallel.")

	var wg sync.WaitGroup
	for i := 0; i < numTables; i++ {
		tableID := uint32(i + 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			added := make([]uint32, 0, 5)
			for j := 0; j < 5; j++ {
				itemID := uint32(rand.Intn(20) + 1)
				req, _ := http.NewRequest("POST", fmt.Sprintf("%s/tables/%d/items/%d", baseURL, tableID, itemID), nil)
				if resp, err := client.Do(req); err == nil {
					resp.Body.Close()
					added = append(added, itemID)
				}
			}
			removals := rand.Intn(len(added) + 1)
			for _, itemID := range added[:removals] {
				req, _ := http.NewRequest("DELETE", fmt.Sprintf("%s/tables/%d/items/%d", baseURL, tableID, itemID), nil)
				if resp, err := client.Do(req); err == nil {
					resp.Body.Close()
				}
			}
		}()
	}
	wg.Wait()

	fmt.Println("\nFinal table status:")
	for i := 0; i < numTables; i++ {
		tableID := uint32(i + 1)
		get(client, fmt.Sprintf("%s/tables/%d/items", baseURL, tableID), fmt.Sprintf("Table %d", tableID))
	}
}
