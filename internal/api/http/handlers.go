package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/PraneethAmbegoda/restaurant-menu-app/internal/service"
)

type Handler struct {
	Restaurant service.RestaurantServiceInterface
	QR         service.QRGenerator
}

func NewHandler(restaurant service.RestaurantServiceInterface, qr service.QRGenerator) *Handler {
	return &Handler{
		Restaurant: restaurant,
		QR:         qr,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/menus", h.getMenus).Methods("GET")
	r.HandleFunc("/tables", h.getTables).Methods("GET")

	r.HandleFunc("/tables/{tableId}/items", h.getItems).Methods("GET")
	r.HandleFunc("/tables/{tableId}/items/{itemId}", h.addItem).Methods("POST")
	r.HandleFunc("/tables/{tableId}/items/{itemId}", h.getItem).Methods("GET")
	r.HandleFunc("/tables/{tableId}/items/{itemId}", h.removeItem).Methods("DELETE")

	r.HandleFunc("/tables/{tableId}/qrcode", h.getTableQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeData(w, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurant-menu-app",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getMenus(w http.ResponseWriter, r *http.Request) {
	menus, err := h.Restaurant.GetAllMenus()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeData(w, menus)
}

func (h *Handler) getTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Restaurant.GetAllTables()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeData(w, tables)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := parsePathID(vars["tableId"], "table ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := parsePathID(vars["itemId"], "item ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Restaurant.AddItem(tableID, itemID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("menu item %d added to table %d", itemID, tableID))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := parsePathID(vars["tableId"], "table ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := parsePathID(vars["itemId"], "item ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Restaurant.RemoveItem(tableID, itemID); err != nil {
		writeDomainError(w, err)
		return
	}
	writeMessage(w, fmt.Sprintf("menu item %d removed from table %d", itemID, tableID))
}

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	tableID, err := parsePathID(mux.Vars(r)["tableId"], "table ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := h.Restaurant.GetItems(tableID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeData(w, items)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := parsePathID(vars["tableId"], "table ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	itemID, err := parsePathID(vars["itemId"], "item ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.Restaurant.GetItem(tableID, itemID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeData(w, item)
}

func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	tableID, err := parsePathID(mux.Vars(r)["tableId"], "table ID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tables, err := h.Restaurant.GetAllTables()
	if err != nil {
		writeDomainError(w, err)
		return
	}
	found := false
	for _, id := range tables {
		if id == tableID {
			found = true
			break
		}
	}
	if !found {
		writeError(w, http.StatusNotFound, fmt.Sprintf("table %d not found", tableID))
		return
	}

	png, err := h.QR.Generate(tableID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
