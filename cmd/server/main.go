package main

import (
	"log"
	"net/http"

	"github.com/PraneethAmbegoda/restaurant-menu-app/config"
	httpapi "github.com/PraneethAmbegoda/restaurant-menu-app/internal/api/http"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/domain"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/service"
	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/storage"
)

func buildCatalogStores() (service.MenuStore, service.TableStore) {
	if config.CatalogBackend() == config.BackendPostgres {
		db := config.MustInitPostgres()
		log.Println("Using postgres catalog stores")
		return storage.NewPostgresMenuStore(db), storage.NewPostgresTableStore(db)
	}
	return storage.NewMemoryMenuStore(domain.DefaultMenu()), storage.NewMemoryTableStore(domain.DefaultTables())
}

func buildOrderStore() service.OrderStore {
	if config.OrderBackend() == config.BackendRedis {
		log.Println("Using redis order store")
		return storage.NewRedisOrderStore(config.MustInitRedis())
	}
	return storage.NewMemoryOrderStore()
}

func main() {
	menus, tables := buildCatalogStores()
	orders := buildOrderStore()

	var publisher service.OrderEventPublisher
	if config.KafkaBroker() != "" {
		writer := config.NewKafkaWriter("orders")
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
		log.Println("Order event publishing enabled")
	}

	restaurant := service.NewRestaurantService(menus, tables, orders, publisher)
	qr := service.TableQRGenerator{BaseURL: config.BaseURL()}

	handler := httpapi.NewHandler(restaurant, qr)
	router := httpapi.NewRouter(handler)

	addr := config.HTTPAddr()
	log.Printf("Restaurant service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, router))
}
